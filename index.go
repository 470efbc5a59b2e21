package folio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eringen/folio/content"
)

// Index loads the markdown tree at root and replaces the store's contents
// with it. Files the loader skips are logged and left out; any other load
// failure leaves the store untouched.
func Index(ctx context.Context, logger *slog.Logger, loader *content.Loader, store *Store, root string) (int, error) {
	entries, err := loader.Load(ctx, root)
	if err != nil {
		var le *content.LoadError
		if !errors.As(err, &le) {
			return 0, fmt.Errorf("folio: load content: %w", err)
		}
		for _, fe := range le.Files {
			logger.Warn("skipped content file", "error", fe)
		}
	}
	if err := store.ReplaceAll(entries); err != nil {
		return 0, fmt.Errorf("folio: write index: %w", err)
	}
	logger.Info("content indexed", "root", root, "entries", len(entries))
	return len(entries), nil
}

// Reindex rebuilds the index from the configured content directory and
// drops the cache so the next request sees the new entries.
func (a *App) Reindex(ctx context.Context) (int, error) {
	n, err := Index(ctx, a.Logger, a.loader, a.Store, a.Config.ContentDir)
	if err != nil {
		return 0, err
	}
	a.Cache.Invalidate()
	return n, nil
}

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Index the content directory and serve the site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app := folio.New(cfg, views.Default(cfg), folio.WithLogger(opts.logger))
			defer app.Close()

			errCh := make(chan error, 1)
			go func() { errCh <- app.Start(ctx) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			opts.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return <-errCh
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides ADDR")
	return cmd
}

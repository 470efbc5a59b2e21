package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/logging"
)

// options holds flags shared by every command.
type options struct {
	envFile  string
	logLevel string
	logger   *slog.Logger
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	opts := &options{logger: logger}

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         "folio is a markdown-driven blog and portfolio engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if opts.logLevel != "" {
				opts.logger = logging.NewLogger(os.Stderr, logging.ParseLevel(opts.logLevel))
			}
			opts.logger.Debug("logger initialized", "level", opts.logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file (skipped when missing)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")

	cmd.AddCommand(
		newServeCommand(opts),
		newIndexCommand(opts),
		newListCommand(opts),
		newTagsCommand(opts),
		newNewCommand(),
		newVersionCommand(),
	)
	return cmd
}

// config loads SiteConfig and, when no --log-level was given, applies the
// configured LOG_LEVEL to the logger.
func (o *options) config() (folio.SiteConfig, error) {
	cfg, err := folio.LoadConfig(o.envFile)
	if err != nil {
		return folio.SiteConfig{}, err
	}
	if o.logLevel == "" {
		o.logger = logging.NewLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	}
	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

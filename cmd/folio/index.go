package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func newIndexCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Load the content directory into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			store, err := folio.NewStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := folio.Index(commandContext(cmd), opts.logger, content.NewLoader(opts.logger), store, cfg.ContentDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d entries from %s\n", n, cfg.ContentDir)
			return nil
		},
	}
}

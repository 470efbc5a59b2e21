package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/listing"
)

func kindFlag(s string) (content.Kind, error) {
	k, ok := content.ParseKind(s)
	if !ok {
		return "", fmt.Errorf("unknown kind %q (want blog, project or page)", s)
	}
	return k, nil
}

func openStore(opts *options) (*folio.Store, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	return folio.NewStore(cfg.DatabasePath)
}

func newListCommand(opts *options) *cobra.Command {
	var (
		kind string
		tags []string
		asc  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered, sorted listing for a kind",
		Long:  "Print the entries of a kind the way the site lists them. Repeat --tag to widen the filter; an entry matches if it has any selected tag.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := kindFlag(kind)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.ListEntries(k)
			if err != nil {
				return err
			}
			eng := listing.New(entries, nil)
			for _, t := range tags {
				eng.ToggleTag(t)
			}
			if asc {
				eng.ToggleSortDirection()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tTAGS")
			for _, e := range eng.View() {
				date := e.Date
				if date == "" {
					date = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", date, e.Slug, e.Title, joinTags(e.Tags))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d\n", len(eng.View()), eng.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(content.KindBlog), "Entry kind (blog, project, page)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Select a tag (repeatable)")
	cmd.Flags().BoolVar(&asc, "asc", false, "Oldest first")
	return cmd
}

// joinTags renders tags for a table cell. Blank tags are valid in the
// listing but print as nothing.
func joinTags(tags []string) string {
	return strings.Join(folio.FilterEmpty(tags), ", ")
}

func newTagsCommand(opts *options) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print the tag universe for a kind in first-seen order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := kindFlag(kind)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			defer store.Close()

			tags, err := store.ListTags(k)
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(content.KindBlog), "Entry kind (blog, project, page)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/christopherstationary/website/core/page"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render PAGE",
		Short: "Localize a page and print it",
		Long: `Render parses an HTML page, replaces the text of every element marked
with data-lang in the selected language and prints the result.

Keys without a translation keep the text already in the markup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				doc, err := loadPage(args[0])
				if err != nil {
					return err
				}
				a.store.Bind(doc)

				w := cmd.OutOrStdout()
				if out != "" {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}
				return doc.Render(w)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func loadPage(path string) (*page.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return page.Parse(f)
}

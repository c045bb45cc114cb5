package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var errIncompleteLocales = errors.New("dictionaries differ")

func newLocalesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "Inspect and publish dictionaries",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Report keys missing from any language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				dict := a.store.Dictionary()
				if dict == nil {
					return fmt.Errorf("no dictionaries loaded from %s source", a.cfg.LocalesSource)
				}

				out := cmd.OutOrStdout()
				langs := a.store.Languages()
				total := 0
				for _, from := range langs {
					for _, to := range langs {
						if from == to {
							continue
						}
						for _, key := range dict.Missing(from, to) {
							fmt.Fprintf(out, "%s: %s (present in %s)\n", to, key, from)
							total++
						}
					}
				}
				if total > 0 {
					return fmt.Errorf("%w: %d missing keys", errIncompleteLocales, total)
				}
				fmt.Fprintf(out, "%d languages, %d keys each\n", len(langs), len(dict.Keys(a.store.DefaultLanguage())))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "push DIR",
		Short: "Upload <lang>.json files from DIR to the S3 bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				src, err := a.s3Source(ctx)
				if err != nil {
					return err
				}
				for _, lang := range a.store.Languages() {
					path := filepath.Join(args[0], lang+".json")
					data, err := os.ReadFile(path)
					if err != nil {
						return fmt.Errorf("read %s: %w", path, err)
					}
					if err := src.Put(ctx, lang, data); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s\n", src.Key(lang))
				}
				return nil
			})
		},
	})

	return cmd
}

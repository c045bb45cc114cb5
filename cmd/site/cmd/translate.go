package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errUntranslated = errors.New("untranslated keys")

func newTranslateCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "translate KEY...",
		Short: "Resolve dictionary keys",
		Long: `Translate prints the text for each dotted key in the selected language.
A key without a translation is printed as-is; with --strict the
command then fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				var missing int
				for _, key := range args {
					res := a.store.Resolve(key)
					marker := ""
					if !res.Translated() {
						missing++
						marker = "  (untranslated)"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s%s\n", key, res, marker)
				}
				if strict && missing > 0 {
					return fmt.Errorf("%w: %d of %d in %s", errUntranslated, missing, len(args), a.store.Current())
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a key has no translation")
	return cmd
}

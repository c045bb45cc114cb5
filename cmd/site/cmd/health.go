package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/christopherstationary/website/core/i18n"
	"github.com/christopherstationary/website/core/preference"
)

var errUnhealthy = errors.New("unhealthy")

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check dictionaries and the preference backend",
		Long: `Health reports whether the dictionaries loaded from the configured
source, whether the stored preference can be read, and pings Redis or
PostgreSQL when one of them holds the preference.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				checks := append([]check{
					{name: "locales (" + a.cfg.LocalesSource + ")", fn: func(context.Context) error {
						if !a.store.Loaded() {
							return i18n.ErrLoadFailed
						}
						return nil
					}},
					{name: "preferences (" + a.cfg.PreferenceBackend + ")", fn: func(ctx context.Context) error {
						_, err := a.prefs.Get(ctx, preference.LanguageKey)
						if errors.Is(err, preference.ErrNotFound) {
							return nil
						}
						return err
					}},
				}, a.checks...)

				var failed []string
				for _, c := range checks {
					if err := c.fn(ctx); err != nil {
						failed = append(failed, c.name)
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", c.name, err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", c.name)
				}
				if len(failed) > 0 {
					return fmt.Errorf("%w: %s", errUnhealthy, strings.Join(failed, ", "))
				}
				return nil
			})
		},
	}
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLangCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang",
		Short: "Show the preferred language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				fmt.Fprintf(cmd.OutOrStdout(), "current: %s\navailable: %s\n",
					a.store.Current(), strings.Join(a.store.Languages(), ", "))
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set CODE",
		Short: "Store the preferred language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				changed, err := a.store.Switch(ctx, args[0])
				if err != nil {
					return err
				}
				if !changed {
					fmt.Fprintf(cmd.OutOrStdout(), "language already %s\n", a.store.Current())
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "language set to %s\n", a.store.Current())
				return nil
			})
		},
	})

	return cmd
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/christopherstationary/website/core/config"
)

type rootOptions struct {
	verbose bool
	lang    string
	cfg     Config
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "site",
		Short: "Localize pages and handle contact forms",
		Long: `site works with the brochure website's pages offline.

It renders pages in Swahili or English, resolves dictionary keys,
stores the preferred language, and validates or submits the contact
and service inquiry forms.

Configuration comes from the environment or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&opts.cfg); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")
	root.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "language to use for this command only")

	root.AddCommand(
		newRenderCmd(opts),
		newTranslateCmd(opts),
		newLangCmd(opts),
		newValidateCmd(opts),
		newSubmitCmd(opts),
		newLocalesCmd(opts),
		newHealthCmd(opts),
	)
	return root
}

// withApp builds the application for one command run and tears it down afterwards.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), opts.cfg.Timeout)
	defer cancel()

	a, err := newApp(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a)
}

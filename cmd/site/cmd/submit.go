package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/christopherstationary/website/core/form"
	"github.com/christopherstationary/website/core/logger"
)

func newSubmitCmd(opts *rootOptions) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "submit PAGE [name=value...]",
		Short: "Validate and submit a form",
		Long: `Submit validates the form like the page does and, when every field
passes, hands it to the configured submitter (SUBMITTER=simulated, dev
or postmark). The visitor-facing notification is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				f, err := pageForm(args[0], flags.id, args[1:])
				if err != nil {
					return err
				}
				sub, err := a.submitter()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				ctrl, err := form.NewController(f,
					form.WithTranslator(a.store),
					form.WithSubmitter(sub),
					form.WithPublisher(a.bus),
					form.WithLogger(a.log),
					form.WithSink(form.SinkFunc(func(e form.Effect) {
						switch e := e.(type) {
						case form.ShowError:
							fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message)
						case form.SetSubmitLabel:
							a.log.Debug("submit label", logger.Form(f.ID), logger.Key("label", e.Label))
						case form.Notify:
							fmt.Fprintf(out, "[%s] %s\n", e.Level, e.Message)
						}
					})),
				)
				if err != nil {
					return err
				}

				_, err = ctrl.Submit(ctx)
				return err
			})
		},
	}

	flags.register(cmd)
	return cmd
}

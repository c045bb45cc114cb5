package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/christopherstationary/website/core/form"
)

var errInvalidAssignment = errors.New("expected name=value")

type formFlags struct {
	id string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.id, "form", "f", form.ContactFormID, "id of the form element")
}

// pageForm reads the form from the page and applies name=value assignments.
func pageForm(path, id string, assignments []string) (*form.Form, error) {
	doc, err := loadPage(path)
	if err != nil {
		return nil, err
	}
	f, err := doc.Form(id)
	if err != nil {
		return nil, err
	}
	for _, kv := range assignments {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errInvalidAssignment, kv)
		}
		if err := f.Set(name, value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "validate PAGE [name=value...]",
		Short: "Validate form values",
		Long: `Validate reads a form from PAGE, fills in the given values and reports
the result for every field. The command fails when any field is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				f, err := pageForm(args[0], flags.id, args[1:])
				if err != nil {
					return err
				}

				res := form.NewValidator(a.store).ValidateForm(*f)
				printResult(cmd.OutOrStdout(), res)
				if !res.Valid() {
					return errors.Join(form.ErrInvalidForm, res.Errors())
				}
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func printResult(w io.Writer, res form.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range res.Fields {
		if f.Valid {
			fmt.Fprintf(tw, "%s\tok\t\n", f.Field)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Field, f.Reason, f.Message)
	}
	_ = tw.Flush()
}

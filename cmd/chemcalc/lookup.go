package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/chemcalc/internal/cli"
)

func newLookupCommand() *cobra.Command {
	output := cli.OutputFormatText
	command := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up the molecular weight, formula and IUPAC name of a chemical",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx)
			if err != nil {
				return err
			}
			defer closeApplication(app)

			record, err := app.session.Search(ctx, args[0])
			if err != nil {
				return fmt.Errorf("session.Search > %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout(), output).Record(record)
		},
	}
	command.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", cli.AllOutputFormats))
	return command
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/chemcalc/internal/cli"
)

func newHistoryCommand() *cobra.Command {
	output := cli.OutputFormatText
	command := &cobra.Command{
		Use:   "history",
		Short: "Show the most recently looked up chemicals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx)
			if err != nil {
				return err
			}
			defer closeApplication(app)

			entries, err := app.session.Recent(ctx)
			if err != nil {
				return fmt.Errorf("session.Recent > %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout(), output).Recent(entries)
		},
	}
	command.Flags().Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", cli.AllOutputFormats))
	return command
}

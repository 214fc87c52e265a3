package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/chemcalc/internal/cli"
)

func newInteractiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Look up chemicals and calculate masses in a prompt loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}
}

func runInteractive(cmd *cobra.Command) error {
	ctx := cmd.Context()
	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer closeApplication(app)

	return cli.NewInteractiveCLI(app.session, cli.Defaults{
		PurityPercent: app.config.Calculator.DefaultPurityPercent,
		Unit:          app.defaultUnit(),
	}, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/cli"
)

func newCalcCommand() *cobra.Command {
	var moles, purity float64
	var unit calculator.Unit
	output := cli.OutputFormatText

	command := &cobra.Command{
		Use:   "calc <name>",
		Short: "Calculate the mass of a chemical needed for an amount of substance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := newApplication(ctx)
			if err != nil {
				return err
			}
			defer closeApplication(app)

			if !cmd.Flags().Changed("purity") {
				purity = app.config.Calculator.DefaultPurityPercent
			}
			if !cmd.Flags().Changed("unit") {
				unit = app.defaultUnit()
			}

			record, err := app.session.Search(ctx, args[0])
			if err != nil {
				return fmt.Errorf("session.Search > %w", err)
			}
			result, err := app.session.Calculate(moles, purity, unit)
			if err != nil {
				return fmt.Errorf("session.Calculate > %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout(), output).Calculation(record, result)
		},
	}
	flags := command.Flags()
	flags.Float64Var(&moles, "moles", 0, "amount of substance in mol")
	flags.Float64Var(&purity, "purity", calculator.DefaultPurityPercent, "purity of the reagent in percent")
	flags.Var(&unit, "unit", fmt.Sprintf("Unit of the result. Possible values are %v", calculator.AllUnits))
	flags.Var(&output, "output", fmt.Sprintf("Output format. Possible values are %v", cli.AllOutputFormats))
	_ = command.MarkFlagRequired("moles")
	return command
}

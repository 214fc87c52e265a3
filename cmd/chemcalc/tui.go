package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/chemcalc/internal/tui"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Look up chemicals and calculate masses in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return fmt.Errorf("tui: requires a terminal (TTY)")
			}
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	// Log lines on stderr would corrupt the screen.
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	ctx := cmd.Context()
	app, err := newApplication(ctx)
	if err != nil {
		return err
	}
	defer closeApplication(app)

	model := tui.NewModel(ctx, app.session, tui.Options{
		PurityPercent: app.config.Calculator.DefaultPurityPercent,
		Unit:          app.defaultUnit(),
	})
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("prog.Run > %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	configFile string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	var logFile string
	var logOutput *os.File

	rootCommand := cobra.Command{
		Use:           "chemcalc",
		Short:         "Look up a chemical and calculate the mass to weigh out",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var w io.Writer = os.Stderr
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("failed to open the log file %s: %w", logFile, err)
				}
				logOutput = f
				w = f
			}
			setupLogger(w, debugMode)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logOutput == nil {
				return nil
			}
			return logOutput.Close()
		},
		// Without a subcommand, the full-screen UI runs on a terminal and the prompt loop otherwise.
		RunE: func(cmd *cobra.Command, args []string) error {
			if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				return runTUI(cmd)
			}
			return runInteractive(cmd)
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCommand.AddCommand(
		newLookupCommand(),
		newCalcCommand(),
		newHistoryCommand(),
		newInteractiveCommand(),
		newTUICommand(),
	)
	return &rootCommand
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogger configures the default logger based on debug mode
func setupLogger(w io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

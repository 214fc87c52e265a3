package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	"github.com/at-ishikawa/chemcalc/internal/session"
)

var errEnd = errors.New("end")

// Session is the part of session.Session the prompt loop drives.
type Session interface {
	Search(ctx context.Context, query string) (compound.Record, error)
	Current() (compound.Record, bool)
	Calculate(moles, purityPercent float64, unit calculator.Unit) (calculator.Result, error)
	Recent(ctx context.Context) ([]compound.RecentEntry, error)
}

var _ Session = (*session.Session)(nil)

type Defaults struct {
	PurityPercent float64
	Unit          calculator.Unit
}

// InteractiveCLI asks for a substance and then for the amount to prepare, until the input ends.
type InteractiveCLI struct {
	session     Session
	defaults    Defaults
	stdinReader *bufio.Reader
	printer     *Printer
}

func NewInteractiveCLI(session Session, defaults Defaults, stdin io.Reader, stdout io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		session:     session,
		defaults:    defaults,
		stdinReader: bufio.NewReader(stdin),
		printer:     NewPrinter(stdout, OutputFormatText),
	}
}

func (cli *InteractiveCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Step(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.printer.writer, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Step runs one round. A blank substance reuses the current one so several
// amounts can be computed after a single lookup.
func (cli *InteractiveCLI) Step(ctx context.Context) error {
	entries, err := cli.session.Recent(ctx)
	if err != nil {
		cli.printer.Error(err)
	} else if err := cli.printer.Recent(entries); err != nil {
		return err
	}

	query, err := cli.prompt("Substance (q to quit): ")
	if err != nil {
		return err
	}
	if query == "q" || query == "quit" {
		return errEnd
	}

	record, ok := cli.session.Current()
	if strings.TrimSpace(query) != "" || !ok {
		record, err = cli.session.Search(ctx, query)
		if err != nil {
			cli.report(err)
			return nil
		}
	}
	if err := cli.printer.Record(record); err != nil {
		return err
	}

	moles, err := cli.promptFloat("Moles (mol): ", 0)
	if err != nil {
		return cli.inputError(err)
	}
	purity, err := cli.promptFloat(fmt.Sprintf("Purity %% [%s]: ", strconv.FormatFloat(cli.defaults.PurityPercent, 'f', -1, 64)), cli.defaults.PurityPercent)
	if err != nil {
		return cli.inputError(err)
	}
	unitInput, err := cli.prompt(fmt.Sprintf("Unit %v [%s]: ", calculator.AllUnits, cli.defaults.Unit))
	if err != nil {
		return err
	}
	unit := cli.defaults.Unit
	if unitInput = strings.TrimSpace(unitInput); unitInput != "" {
		if err := unit.Set(unitInput); err != nil {
			cli.printer.Warning(err)
			return nil
		}
	}

	result, err := cli.session.Calculate(moles, purity, unit)
	if err != nil {
		cli.report(err)
		return nil
	}
	return cli.printer.Calculation(record, result)
}

func (cli *InteractiveCLI) report(err error) {
	switch {
	case session.IsWarning(err):
		cli.printer.Warning(err)
	case errors.Is(err, session.ErrNoMatch):
		cli.printer.Error(session.ErrNoMatch)
	default:
		cli.printer.Error(err)
	}
}

// inputError turns a number that failed to parse into a warning and ends the round.
func (cli *InteractiveCLI) inputError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		cli.printer.Warning(fmt.Errorf("not a number: %q", numErr.Num))
		return nil
	}
	return err
}

func (cli *InteractiveCLI) prompt(label string) (string, error) {
	if _, err := cli.printer.bold.Fprint(cli.printer.writer, label); err != nil {
		return "", fmt.Errorf("Fprint > %w", err)
	}
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			return "", errEnd
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (cli *InteractiveCLI) promptFloat(label string, defaultValue float64) (float64, error) {
	input, err := cli.prompt(label)
	if err != nil {
		return 0, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	return strconv.ParseFloat(input, 64)
}

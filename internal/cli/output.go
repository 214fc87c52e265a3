package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	AllOutputFormats             = []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML}
)

func (f *OutputFormat) Set(val string) error {
	for _, format := range AllOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

type calculationOutput struct {
	Compound      compound.Record `json:"compound" yaml:"compound"`
	Moles         float64         `json:"moles" yaml:"moles"`
	PurityPercent float64         `json:"purity_percent" yaml:"purity_percent"`
	Unit          calculator.Unit `json:"unit" yaml:"unit"`
	Mass          string          `json:"mass" yaml:"mass"`
}

// Printer writes lookup and calculation results in one output format.
type Printer struct {
	writer io.Writer
	format OutputFormat
	bold   *color.Color
	faint  *color.Color
	warn   *color.Color
	fail   *color.Color
}

func NewPrinter(writer io.Writer, format OutputFormat) *Printer {
	if format == "" {
		format = OutputFormatText
	}
	return &Printer{
		writer: writer,
		format: format,
		bold:   color.New(color.Bold),
		faint:  color.New(color.Faint),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
	}
}

func (p *Printer) Record(record compound.Record) error {
	if p.format != OutputFormatText {
		return p.encode(record)
	}

	fields := [][2]string{
		{"Query", record.QueryName},
	}
	if record.EnglishName != "" && record.EnglishName != record.QueryName {
		fields = append(fields, [2]string{"English name", record.EnglishName})
	}
	fields = append(fields,
		[2]string{"Formula", record.Formula},
		[2]string{"Molecular weight", strconv.FormatFloat(record.MolecularWeight, 'f', -1, 64) + " g/mol"},
		[2]string{"IUPAC name", record.IUPACName},
	)
	for _, field := range fields {
		if _, err := p.bold.Fprintf(p.writer, "%-17s", field[0]+":"); err != nil {
			return fmt.Errorf("Fprintf > %w", err)
		}
		if _, err := fmt.Fprintf(p.writer, " %s\n", field[1]); err != nil {
			return fmt.Errorf("Fprintf > %w", err)
		}
	}
	return nil
}

func (p *Printer) Calculation(record compound.Record, result calculator.Result) error {
	if p.format != OutputFormatText {
		return p.encode(calculationOutput{
			Compound:      record,
			Moles:         result.Input.Moles,
			PurityPercent: result.Input.PurityPercent,
			Unit:          result.Input.Unit,
			Mass:          result.Formatted(),
		})
	}

	if _, err := p.bold.Fprintf(p.writer, "Required mass: %s\n", result); err != nil {
		return fmt.Errorf("Fprintf > %w", err)
	}
	if _, err := p.faint.Fprintf(p.writer, "  %s\n", result.Expression()); err != nil {
		return fmt.Errorf("Fprintf > %w", err)
	}
	return nil
}

func (p *Printer) Recent(entries []compound.RecentEntry) error {
	if p.format != OutputFormatText {
		if entries == nil {
			entries = []compound.RecentEntry{}
		}
		return p.encode(entries)
	}

	if len(entries) == 0 {
		_, err := p.faint.Fprintln(p.writer, "No recent queries")
		return err
	}
	if _, err := p.bold.Fprintln(p.writer, "Recent queries:"); err != nil {
		return fmt.Errorf("Fprintln > %w", err)
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintf(p.writer, "  %s (%s)\n", entry.QueryName, entry.Formula); err != nil {
			return fmt.Errorf("Fprintf > %w", err)
		}
	}
	return nil
}

// Warning is for input problems the user can correct.
func (p *Printer) Warning(err error) {
	_, _ = p.warn.Fprintf(p.writer, "Warning: %v\n", err)
}

func (p *Printer) Error(err error) {
	_, _ = p.fail.Fprintf(p.writer, "Error: %v\n", err)
}

func (p *Printer) encode(value any) error {
	switch p.format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(p.writer)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("json.Encode > %w", err)
		}
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(p.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("yaml.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("yaml.Close > %w", err)
		}
	default:
		return fmt.Errorf("invalid output format: %s", p.format)
	}
	return nil
}

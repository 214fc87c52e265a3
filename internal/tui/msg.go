// Package tui implements the full-screen lookup and mass calculation screen.
package tui

import (
	"context"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
)

// Session looks up compounds and computes masses for the screen.
type Session interface {
	Search(ctx context.Context, query string) (compound.Record, error)
	Calculate(moles, purityPercent float64, unit calculator.Unit) (calculator.Result, error)
	Recent(ctx context.Context) ([]compound.RecentEntry, error)
}

// field identifies a text input on the screen.
type field int

const (
	fieldQuery field = iota
	fieldMoles
	fieldPurity
	fieldCount
)

// searchDoneMsg carries the result of Session.Search.
type searchDoneMsg struct {
	Query  string
	Record compound.Record
	Err    error
}

// recentMsg carries the result of Session.Recent.
type recentMsg struct {
	Entries []compound.RecentEntry
	Err     error
}

// notice is a one-line message under the inputs.
type notice struct {
	text    string
	warning bool
}

// Package session holds the state of one interactive run: the compound that was looked up last
// and the collaborators needed to look up another one.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	"github.com/at-ishikawa/chemcalc/internal/translation"
)

var (
	ErrEmptyQuery      = errors.New("query is empty")
	ErrNoMatch         = errors.New("substance not matched, try English name or identifier")
	ErrNoCurrentRecord = errors.New("no substance has been looked up yet")
)

// Session is not safe for concurrent use; each user run owns one.
type Session struct {
	translator translation.EnglishTranslator
	lookuper   compound.Lookuper
	store      compound.Store

	current *compound.Record
}

func New(translator translation.EnglishTranslator, lookuper compound.Lookuper, store compound.Store) *Session {
	return &Session{
		translator: translator,
		lookuper:   lookuper,
		store:      store,
	}
}

// Search resolves query and makes it the current record. The query is used verbatim as the
// cache key. On failure the previous current record is kept.
func (s *Session) Search(ctx context.Context, query string) (compound.Record, error) {
	if strings.TrimSpace(query) == "" {
		return compound.Record{}, ErrEmptyQuery
	}

	translated := s.translator.ToEnglish(ctx, query)
	if translated.Reason != nil {
		slog.Default().Debug("using the query as typed", "query", query, "reason", translated.Reason)
	}

	properties, err := s.lookuper.Lookup(ctx, translated.Text)
	if err != nil {
		slog.Default().Info("compound lookup failed", "query", query, "identifier", translated.Text, "error", err)
		return compound.Record{}, fmt.Errorf("%w: %w", ErrNoMatch, err)
	}

	record := compound.NewRecord(query, translated.Text, properties)
	if err := s.store.Upsert(ctx, record); err != nil {
		slog.Default().Warn("failed to cache the lookup result", "query", query, "error", err)
	}
	s.current = &record
	return record, nil
}

// Current returns the record of the last successful search.
func (s *Session) Current() (compound.Record, bool) {
	if s.current == nil {
		return compound.Record{}, false
	}
	return *s.current, true
}

// Calculate computes the mass to weigh out for the current record.
func (s *Session) Calculate(moles, purityPercent float64, unit calculator.Unit) (calculator.Result, error) {
	if s.current == nil {
		return calculator.Result{}, ErrNoCurrentRecord
	}
	return calculator.CalculateMass(calculator.Input{
		MolecularWeight: s.current.MolecularWeight,
		Moles:           moles,
		PurityPercent:   purityPercent,
		Unit:            unit,
	})
}

// Recent returns the latest cached queries, newest first.
func (s *Session) Recent(ctx context.Context) ([]compound.RecentEntry, error) {
	entries, err := s.store.Recent(ctx, compound.DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("store.Recent > %w", err)
	}
	return entries, nil
}

// IsWarning reports whether err is an input problem to show as a warning rather than a failure.
func IsWarning(err error) bool {
	return errors.Is(err, calculator.ErrNonPositiveMoles) ||
		errors.Is(err, calculator.ErrInvalidPurity) ||
		errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, ErrNoCurrentRecord)
}

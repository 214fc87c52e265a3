package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	mock_compound "github.com/at-ishikawa/chemcalc/internal/mocks/compound"
	mock_translation "github.com/at-ishikawa/chemcalc/internal/mocks/translation"
	"github.com/at-ishikawa/chemcalc/internal/session"
	"github.com/at-ishikawa/chemcalc/internal/translation"
)

var saltProperties = compound.Properties{MolecularWeight: 58.44, Formula: "ClNa", IUPACName: "sodium chloride"}

type sessionMocks struct {
	translator *mock_translation.MockEnglishTranslator
	lookuper   *mock_compound.MockLookuper
	store      *mock_compound.MockStore
}

func (m sessionMocks) expectLookup(query string, properties compound.Properties) {
	m.translator.EXPECT().ToEnglish(gomock.Any(), query).Return(translation.Result{Text: query})
	m.lookuper.EXPECT().Lookup(gomock.Any(), query).Return(properties, nil)
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
}

func newTestModel(t *testing.T) (Model, sessionMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sessionMocks{
		translator: mock_translation.NewMockEnglishTranslator(ctrl),
		lookuper:   mock_compound.NewMockLookuper(ctrl),
		store:      mock_compound.NewMockStore(ctrl),
	}
	model := NewModel(context.Background(), session.New(m.translator, m.lookuper, m.store), Options{
		PurityPercent: calculator.DefaultPurityPercent,
		Unit:          calculator.UnitGram,
	})
	return model, m
}

// update sends msg and returns the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return updated, cmd
}

func pressKey(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: keyType})
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// searchFor runs a successful search without going through the spinner.
func searchFor(t *testing.T, m Model, mocks sessionMocks, query string, properties compound.Properties) Model {
	t.Helper()
	mocks.expectLookup(query, properties)
	m, _ = update(t, m, m.search(query)())
	return m
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}

// execBatch runs cmd and returns the messages it produced. Spinner ticks are
// skipped to avoid recursion.
func execBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		result := c()
		if _, isTick := result.(spinner.TickMsg); !isTick {
			msgs = append(msgs, result)
		}
	}
	return msgs
}

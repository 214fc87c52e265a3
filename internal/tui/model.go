package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	"github.com/at-ishikawa/chemcalc/internal/session"
)

// Options are the initial calculator settings.
type Options struct {
	PurityPercent float64
	Unit          calculator.Unit
}

// Model is the Bubble Tea model of the lookup screen.
// Only one search runs at a time; input is ignored while it is in flight.
type Model struct {
	ctx     context.Context
	session Session
	options Options

	inputs    [fieldCount]textinput.Model
	focus     field
	unit      calculator.Unit
	spinner   spinner.Model
	searching bool

	record *compound.Record
	result *calculator.Result
	notice *notice
	recent []compound.RecentEntry

	keys  keyMap
	help  help.Model
	width int
}

func NewModel(ctx context.Context, session Session, options Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		input := textinput.New()
		input.Prompt = ""
		inputs[i] = input
	}
	inputs[fieldQuery].Placeholder = "name, synonym or identifier"
	inputs[fieldQuery].CharLimit = 256
	inputs[fieldMoles].Placeholder = "0.1"
	inputs[fieldPurity].Placeholder = strconv.FormatFloat(options.PurityPercent, 'f', -1, 64)
	inputs[fieldQuery].Focus()

	return Model{
		ctx:     ctx,
		session: session,
		options: options,
		inputs:  inputs,
		focus:   fieldQuery,
		unit:    options.Unit,
		spinner: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecent())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchDoneMsg:
		return m.handleSearchDone(msg)

	case recentMsg:
		if msg.Err != nil {
			m.notice = &notice{text: fmt.Sprintf("Failed to load recent queries: %v", msg.Err)}
			return m, nil
		}
		m.recent = msg.Entries
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.searching:
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.focusField((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.Unit):
		m.unit = m.unit.Next()
		if m.result != nil {
			m.calculate()
		}
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.focus == fieldQuery {
			return m.startSearch()
		}
		m.calculate()
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) focusField(next field) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = next
	return m, m.inputs[m.focus].Focus()
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	query := m.inputs[fieldQuery].Value()
	if strings.TrimSpace(query) == "" {
		m.notice = &notice{text: session.ErrEmptyQuery.Error(), warning: true}
		return m, nil
	}

	m.searching = true
	m.notice = nil
	return m, tea.Batch(m.spinner.Tick, m.search(query))
}

func (m Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.searching = false
	if msg.Err != nil {
		text := msg.Err.Error()
		if errors.Is(msg.Err, session.ErrNoMatch) {
			text = session.ErrNoMatch.Error()
		}
		m.notice = &notice{text: text, warning: session.IsWarning(msg.Err)}
		return m, nil
	}

	record := msg.Record
	m.record = &record
	m.result = nil
	m.notice = nil
	next, cmd := m.focusField(fieldMoles)
	return next, tea.Batch(cmd, m.loadRecent())
}

// calculate recomputes the mass card from the inputs and the selected unit.
func (m *Model) calculate() {
	m.result = nil
	moles, err := parseNumber(m.inputs[fieldMoles].Value(), 0)
	if err != nil {
		m.notice = &notice{text: err.Error(), warning: true}
		return
	}
	purity, err := parseNumber(m.inputs[fieldPurity].Value(), m.options.PurityPercent)
	if err != nil {
		m.notice = &notice{text: err.Error(), warning: true}
		return
	}

	result, err := m.session.Calculate(moles, purity, m.unit)
	if err != nil {
		m.notice = &notice{text: err.Error(), warning: session.IsWarning(err)}
		return
	}
	m.notice = nil
	m.result = &result
}

func parseNumber(input string, defaultValue float64) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	return value, nil
}

func (m Model) search(query string) tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		record, err := sess.Search(ctx, query)
		return searchDoneMsg{Query: query, Record: record, Err: err}
	}
}

func (m Model) loadRecent() tea.Cmd {
	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		entries, err := sess.Recent(ctx)
		return recentMsg{Entries: entries, Err: err}
	}
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func (m sessionMocks) expectSaltLookup() {
	m.translator.EXPECT().ToEnglish(gomock.Any(), "table salt").Return(translation.Result{Text: "table salt"})
	m.lookuper.EXPECT().Lookup(gomock.Any(), "table salt").Return(saltProperties, nil)
	m.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
}

func newTestInteractiveCLI(t *testing.T, input string) (*InteractiveCLI, sessionMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sessionMocks{
		translator: mock_translation.NewMockEnglishTranslator(ctrl),
		lookuper:   mock_compound.NewMockLookuper(ctrl),
		store:      mock_compound.NewMockStore(ctrl),
	}
	m.store.EXPECT().Recent(gomock.Any(), compound.DefaultRecentLimit).Return(nil, nil).AnyTimes()

	var buf bytes.Buffer
	cli := &InteractiveCLI{
		session: session.New(m.translator, m.lookuper, m.store),
		defaults: Defaults{
			PurityPercent: calculator.DefaultPurityPercent,
			Unit:          calculator.UnitGram,
		},
		stdinReader: bufio.NewReader(strings.NewReader(input)),
		printer:     NewPrinter(&buf, OutputFormatText),
	}
	return cli, m, &buf
}

func TestInteractiveCLI_Step(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name         string
		input        string
		setupMocks   func(m sessionMocks)
		wantErr      error
		wantContains []string
	}{
		{
			name:       "defaults for purity and unit",
			input:      "table salt\n0.01\n\n\n",
			setupMocks: sessionMocks.expectSaltLookup,
			wantContains: []string{
				"No recent queries",
				"Formula:          ClNa",
				"Required mass: 0.5844 g",
				"(0.01 mol × 58.44 g/mol) / 100%",
			},
		},
		{
			name:       "explicit purity and unit",
			input:      "table salt\n1\n50\nmg\n",
			setupMocks: sessionMocks.expectSaltLookup,
			wantContains: []string{
				"Required mass: 116880.0000 mg",
			},
		},
		{
			name:  "no match",
			input: "unobtainium\n",
			setupMocks: func(m sessionMocks) {
				m.translator.EXPECT().ToEnglish(gomock.Any(), "unobtainium").Return(translation.Result{Text: "unobtainium"})
				m.lookuper.EXPECT().Lookup(gomock.Any(), "unobtainium").Return(compound.Properties{}, &compound.LookupError{Identifier: "unobtainium", Reason: compound.ReasonNotFound, StatusCode: 404})
			},
			wantContains: []string{"Error: substance not matched, try English name or identifier\n"},
		},
		{
			name:         "blank query before any lookup",
			input:        "\n",
			setupMocks:   func(m sessionMocks) {},
			wantContains: []string{"Warning: query is empty"},
		},
		{
			name:         "moles is not a number",
			input:        "table salt\nabc\n",
			setupMocks:   sessionMocks.expectSaltLookup,
			wantContains: []string{`Warning: not a number: "abc"`},
		},
		{
			name:         "zero moles",
			input:        "table salt\n0\n\n\n",
			setupMocks:   sessionMocks.expectSaltLookup,
			wantContains: []string{"Warning: amount of substance must be greater than 0 mol"},
		},
		{
			name:         "zero purity",
			input:        "table salt\n1\n0\n\n",
			setupMocks:   sessionMocks.expectSaltLookup,
			wantContains: []string{"Warning: purity must be greater than 0%"},
		},
		{
			name:         "unknown unit",
			input:        "table salt\n1\n\nlb\n",
			setupMocks:   sessionMocks.expectSaltLookup,
			wantContains: []string{"Warning: invalid unit: lb"},
		},
		{
			name:       "quit",
			input:      "q\n",
			setupMocks: func(m sessionMocks) {},
			wantErr:    errEnd,
		},
		{
			name:       "end of input",
			input:      "",
			setupMocks: func(m sessionMocks) {},
			wantErr:    errEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, m, buf := newTestInteractiveCLI(t, tt.input)
			tt.setupMocks(m)

			err := cli.Step(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestInteractiveCLI_Run(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	// The second round reuses the looked up substance with a blank query.
	cli, m, buf := newTestInteractiveCLI(t, "table salt\n0.01\n\n\n\n1\n\nkg\nq\n")
	m.expectSaltLookup()

	err := cli.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Required mass: 0.5844 g")
	assert.Contains(t, buf.String(), "Required mass: 0.0584 kg")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/chemcalc/internal/session"
	"github.com/at-ishikawa/chemcalc/internal/testutil"
)

func TestLookupCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name         string
		args         []string
		wantErr      error
		wantContains []string
	}{
		{
			name:         "text",
			args:         []string{"lookup", "aspirin"},
			wantContains: []string{"Formula:          C9H8O4", "Molecular weight: 180.16 g/mol", "IUPAC name:       2-acetyloxybenzoic acid"},
		},
		{
			name:         "json",
			args:         []string{"lookup", "table salt", "--output", "json"},
			wantContains: []string{`"query_name": "table salt"`, `"molecular_weight": 58.44`},
		},
		{
			name:         "yaml",
			args:         []string{"lookup", "aspirin", "--output", "yaml"},
			wantContains: []string{"formula: C9H8O4\n"},
		},
		{
			name:    "unknown chemical",
			args:    []string{"lookup", "unobtainium"},
			wantErr: session.ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := setupTestConfig(t)

			got, err := execute(t, configPath, "", tt.args...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLookupCommand_InvalidOutput(t *testing.T) {
	configPath := setupTestConfig(t)
	_, err := execute(t, configPath, "", "lookup", "aspirin", "--output", "xml")
	assert.ErrorContains(t, err, "invalid output format: xml")
}

func TestCalcCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name          string
		args          []string
		configOptions []testutil.ConfigOption
		want          string
		wantErr       string
	}{
		{
			name: "grams by default",
			args: []string{"calc", "table salt", "--moles", "0.01"},
			want: "Required mass: 0.5844 g\n  (0.01 mol × 58.44 g/mol) / 100%\n",
		},
		{
			name: "purity and unit flags",
			args: []string{"calc", "aspirin", "--moles", "0.001", "--purity", "50", "--unit", "mg"},
			want: "Required mass: 360.3200 mg\n  (0.001 mol × 180.16 g/mol) / 50%\n",
		},
		{
			name: "kilograms",
			args: []string{"calc", "aspirin", "--moles", "1", "--unit", "kg"},
			want: "Required mass: 0.1802 kg\n  (1 mol × 180.16 g/mol) / 100%\n",
		},
		{
			name:          "defaults from the config file",
			args:          []string{"calc", "table salt", "--moles", "1"},
			configOptions: []testutil.ConfigOption{testutil.WithCalculatorDefaults(50, "mg")},
			want:          "Required mass: 116880.0000 mg\n  (1 mol × 58.44 g/mol) / 50%\n",
		},
		{
			name:    "zero moles",
			args:    []string{"calc", "aspirin", "--moles", "0"},
			wantErr: "amount of substance must be greater than 0 mol",
		},
		{
			name:    "moles is required",
			args:    []string{"calc", "aspirin"},
			wantErr: `required flag(s) "moles" not set`,
		},
		{
			name:    "unknown unit",
			args:    []string{"calc", "aspirin", "--moles", "1", "--unit", "lb"},
			wantErr: "invalid unit: lb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CHEMCALC_DATABASE", "")
			server := testutil.NewPubChemServer(t, testCompounds)
			configPath := testutil.SetupTestConfig(t, t.TempDir(), server.URL, tt.configOptions...)

			got, err := execute(t, configPath, "", tt.args...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	configPath := setupTestConfig(t)

	got, err := execute(t, configPath, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No recent queries\n", got)

	for _, name := range []string{"aspirin", "table salt", "aspirin"} {
		_, err := execute(t, configPath, "", "lookup", name)
		require.NoError(t, err)
	}

	got, err = execute(t, configPath, "", "history")
	require.NoError(t, err)
	assert.Equal(t, "Recent queries:\n  aspirin (C9H8O4)\n  table salt (ClNa)\n", got)

	got, err = execute(t, configPath, "", "history", "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"query_name":"aspirin","formula":"C9H8O4"},{"query_name":"table salt","formula":"ClNa"}]`, got)
}

func TestInteractiveCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	configPath := setupTestConfig(t)

	got, err := execute(t, configPath, "aspirin\n0.001\n\n\nunobtainium\nq\n", "interactive")
	require.NoError(t, err)
	assert.Contains(t, got, "Required mass: 0.1802 g")
	assert.Contains(t, got, "Error: substance not matched, try English name or identifier")
	assert.Contains(t, got, "Recent queries:\n  aspirin (C9H8O4)")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("translation:\n  provider: deepl\n"), 0644))

	_, err := execute(t, configPath, "", "history")
	assert.ErrorContains(t, err, "provider must be one of [google openai none]")
}

func TestRootCommand_LogFile(t *testing.T) {
	configPath := setupTestConfig(t)
	logPath := filepath.Join(t.TempDir(), "chemcalc.log")

	_, err := execute(t, configPath, "", "--log-file", logPath, "--debug", "lookup", "aspirin")
	require.NoError(t, err)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "application is ready")
}

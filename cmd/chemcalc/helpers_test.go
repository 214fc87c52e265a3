package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/chemcalc/internal/calculator"
	"github.com/at-ishikawa/chemcalc/internal/compound"
	"github.com/at-ishikawa/chemcalc/internal/config"
	"github.com/at-ishikawa/chemcalc/internal/testutil"
	"github.com/at-ishikawa/chemcalc/internal/translation"
)

func TestApplication_NewTranslator(t *testing.T) {
	tests := []struct {
		name        string
		provider    string
		wantType    translation.Translator
		wantClosers int
	}{
		{
			name:        "google",
			provider:    config.TranslationProviderGoogle,
			wantType:    &translation.GoogleTranslator{},
			wantClosers: 1,
		},
		{
			name:     "openai",
			provider: config.TranslationProviderOpenAI,
			wantType: &translation.OpenAITranslator{},
		},
		{
			name:     "none",
			provider: config.TranslationProviderNone,
			wantType: translation.Noop{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &application{config: &config.Config{
				Translation: config.TranslationConfig{Provider: tt.provider},
				OpenAI:      config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
			}}
			got := app.newTranslator()
			assert.IsType(t, tt.wantType, got)
			assert.Len(t, app.closers, tt.wantClosers)
		})
	}
}

func TestApplication_DefaultUnit(t *testing.T) {
	app := &application{config: &config.Config{Calculator: config.CalculatorConfig{DefaultUnit: "kg"}}}
	assert.Equal(t, calculator.UnitKilogram, app.defaultUnit())
}

func TestApplication_Close(t *testing.T) {
	var order []string
	closeErr := errors.New("close failed")
	app := &application{closers: []func() error{
		func() error { order = append(order, "db"); return nil },
		func() error { order = append(order, "google"); return closeErr },
	}}

	err := app.Close()
	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, []string{"google", "db"}, order)
}

func TestNewApplication_TranslatesCJKQueries(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	t.Setenv("CHEMCALC_DATABASE", "")

	googleServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		assert.Equal(t, "阿司匹林", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[[["Aspirin","阿司匹林",null,null,10]],null,"zh-CN"]`))
	}))
	defer googleServer.Close()
	pubchemServer := testutil.NewPubChemServer(t, map[string]compound.Properties{
		"Aspirin": {MolecularWeight: 180.16, Formula: "C9H8O4", IUPACName: "2-acetyloxybenzoic acid"},
	})
	configPath := testutil.SetupTestConfig(t, t.TempDir(), pubchemServer.URL,
		testutil.WithTranslationProvider(config.TranslationProviderGoogle),
		testutil.WithGoogleBaseURL(googleServer.URL),
	)

	got, err := execute(t, configPath, "", "lookup", "阿司匹林")
	require.NoError(t, err)
	assert.Contains(t, got, "Query:            阿司匹林")
	assert.Contains(t, got, "English name:     Aspirin")

	got, err = execute(t, configPath, "", "history")
	require.NoError(t, err)
	assert.Contains(t, got, "阿司匹林 (C9H8O4)")
}

func TestNewApplication_InvalidDatabasePath(t *testing.T) {
	t.Setenv("CHEMCALC_DATABASE", "")
	configFile = testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1")
	t.Setenv("CHEMCALC_DATABASE", t.TempDir())
	defer func() { configFile = "" }()

	_, err := newApplication(context.Background())
	assert.Error(t, err)
}

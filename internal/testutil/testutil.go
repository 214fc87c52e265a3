// Package testutil provides shared test helpers for config files and a fake PubChem server.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/chemcalc/internal/compound"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	translationProvider string
	googleBaseURL       string
	defaultPurity       float64
	defaultUnit         string
}

// WithTranslationProvider replaces the default "none" provider.
func WithTranslationProvider(provider string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.translationProvider = provider
	}
}

// WithGoogleBaseURL points the Google translator at a test server.
func WithGoogleBaseURL(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.googleBaseURL = baseURL
	}
}

// WithCalculatorDefaults sets the default purity and unit.
func WithCalculatorDefaults(purityPercent float64, unit string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.defaultPurity = purityPercent
		cfg.defaultUnit = unit
	}
}

// SetupTestConfig writes a config file that talks to compoundBaseURL and keeps the cache in tmpDir.
// Translation is disabled unless an option enables it. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, compoundBaseURL string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		translationProvider: "none",
		googleBaseURL:       "https://translate.googleapis.com",
		defaultPurity:       100,
		defaultUnit:         "g",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`compound:
  base_url: %s
  timeout: 5s
translation:
  provider: %s
  timeout: 5s
  google:
    base_url: %s
cache:
  database_path: %s
calculator:
  default_purity_percent: %s
  default_unit: %s
`,
		compoundBaseURL,
		cfg.translationProvider,
		cfg.googleBaseURL,
		DatabasePath(tmpDir),
		strconv.FormatFloat(cfg.defaultPurity, 'f', -1, 64),
		cfg.defaultUnit,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DatabasePath is the cache file used by SetupTestConfig.
func DatabasePath(tmpDir string) string {
	return filepath.Join(tmpDir, "cache", "chem_cache.db")
}

// NewPubChemServer serves the property endpoint for the given compounds, keyed by name.
// Unknown names get PubChem's 404 fault. The server is closed when the test ends.
func NewPubChemServer(t *testing.T, compounds map[string]compound.Properties) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := strings.CutPrefix(r.URL.Path, "/compound/name/")
		if ok {
			name, _, ok = strings.Cut(name, "/property/")
		}
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		properties, found := compounds[name]
		if !found {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"Fault": map[string]any{
					"Code":    "PUGREST.NotFound",
					"Message": "No CID found",
				},
			})
			return
		}

		property := map[string]any{
			"CID":              1,
			"MolecularWeight":  strconv.FormatFloat(properties.MolecularWeight, 'f', -1, 64),
			"MolecularFormula": properties.Formula,
		}
		if properties.IUPACName != "" {
			property["IUPACName"] = properties.IUPACName
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"PropertyTable": map[string]any{
				"Properties": []any{property},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

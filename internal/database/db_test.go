package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/chemcalc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name string
		path func(dir string) string
	}{
		{
			name: "creates database file in existing directory",
			path: func(dir string) string {
				return filepath.Join(dir, "chem_cache.db")
			},
		},
		{
			name: "creates missing parent directories",
			path: func(dir string) string {
				return filepath.Join(dir, "nested", "cache", "chem_cache.db")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t.TempDir())
			got, err := Open(config.CacheConfig{DatabasePath: path})
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, "sqlite", got.DriverName())
			_, err = got.Exec("CREATE TABLE probe (id INTEGER)")
			require.NoError(t, err)
			_, err = os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

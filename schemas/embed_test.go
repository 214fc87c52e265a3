package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChemicalsTable(t *testing.T) {
	assert.Contains(t, ChemicalsTable, "CREATE TABLE IF NOT EXISTS chemicals")
	for _, column := range []string{"query_name TEXT PRIMARY KEY", "en_name", "mw REAL", "formula", "iupac_name", "cas"} {
		assert.Contains(t, ChemicalsTable, column)
	}
}

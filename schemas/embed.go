// Package schemas provides the embedded SQL schema of the lookup cache.
package schemas

import _ "embed"

// ChemicalsTable creates the chemicals table if it does not exist.
// en_name and cas are carried for compatibility with existing cache files.
//
//go:embed chemicals.sql
var ChemicalsTable string

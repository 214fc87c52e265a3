package compound

// IUPACNameNotAvailable is stored when the service does not return an IUPAC name.
const IUPACNameNotAvailable = "N/A"

// Properties is the flat result of one successful lookup.
type Properties struct {
	MolecularWeight float64
	Formula         string
	IUPACName       string
}

// Record is one resolved lookup, keyed by the query exactly as the user typed it.
type Record struct {
	QueryName       string  `db:"query_name" json:"query_name" yaml:"query_name"`
	EnglishName     string  `db:"-" json:"english_name,omitempty" yaml:"english_name,omitempty"`
	MolecularWeight float64 `db:"mw" json:"molecular_weight" yaml:"molecular_weight"`
	Formula         string  `db:"formula" json:"formula" yaml:"formula"`
	IUPACName       string  `db:"iupac_name" json:"iupac_name" yaml:"iupac_name"`
}

// NewRecord builds the record for a query and the properties resolved for its English form.
func NewRecord(queryName, englishName string, properties Properties) Record {
	return Record{
		QueryName:       queryName,
		EnglishName:     englishName,
		MolecularWeight: properties.MolecularWeight,
		Formula:         properties.Formula,
		IUPACName:       properties.IUPACName,
	}
}

// RecentEntry is a row of the recent queries list.
type RecentEntry struct {
	QueryName string `db:"query_name" json:"query_name" yaml:"query_name"`
	Formula   string `db:"formula" json:"formula" yaml:"formula"`
}

// https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
package pubchem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// PropertyNames is the property list requested from the compound endpoint, in request order.
const PropertyNames = "MolecularWeight,MolecularFormula,IUPACName"

type Response struct {
	PropertyTable *PropertyTable `json:"PropertyTable"`
	Fault         *Fault         `json:"Fault,omitempty"`
}

type PropertyTable struct {
	Properties []Property `json:"Properties"`
}

type Property struct {
	CID              int              `json:"CID"`
	MolecularWeight  *MolecularWeight `json:"MolecularWeight"`
	MolecularFormula string           `json:"MolecularFormula"`
	IUPACName        string           `json:"IUPACName,omitempty"`
}

// Fault is the error body PUG REST returns alongside a non-2xx status.
type Fault struct {
	Code    string   `json:"Code"`
	Message string   `json:"Message"`
	Details []string `json:"Details,omitempty"`
}

func (f Fault) String() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// MolecularWeight is in g/mol.
type MolecularWeight float64

func (w *MolecularWeight) UnmarshalJSON(data []byte) error {
	// PUG REST sends the weight as a decimal string, older responses as a number
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("strconv.ParseFloat(%q) > %w", s, err)
		}
		*w = MolecularWeight(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*w = MolecularWeight(value)
	return nil
}

// First returns the first property row, which is the best match for a name query.
func (r Response) First() (Property, bool) {
	if r.PropertyTable == nil || len(r.PropertyTable.Properties) == 0 {
		return Property{}, false
	}
	return r.PropertyTable.Properties[0], true
}

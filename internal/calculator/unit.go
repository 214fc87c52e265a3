package calculator

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Unit is the mass unit of a calculation result.
type Unit string

const (
	UnitGram      Unit = "g"
	UnitMilligram Unit = "mg"
	UnitKilogram  Unit = "kg"
)

var (
	_        pflag.Value = (*Unit)(nil)
	AllUnits             = []Unit{UnitGram, UnitMilligram, UnitKilogram}
)

func (u *Unit) Set(val string) error {
	for _, unit := range AllUnits {
		if val == string(unit) {
			*u = unit
			return nil
		}
	}
	return fmt.Errorf("invalid unit: %s", val)
}

func (u Unit) String() string {
	return string(u)
}

func (u *Unit) Type() string {
	return "Unit"
}

// fromGrams converts a mass in grams into u.
func (u Unit) fromGrams(grams float64) (float64, error) {
	switch u {
	case UnitGram:
		return grams, nil
	case UnitMilligram:
		return grams * 1000, nil
	case UnitKilogram:
		return grams / 1000, nil
	default:
		return 0, fmt.Errorf("invalid unit: %s", u)
	}
}

// Next cycles through AllUnits.
func (u Unit) Next() Unit {
	for i, unit := range AllUnits {
		if unit == u {
			return AllUnits[(i+1)%len(AllUnits)]
		}
	}
	return UnitGram
}

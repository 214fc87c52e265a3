// Package calculator computes how much of a substance to weigh out.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const DefaultPurityPercent = 100.0

var (
	ErrNonPositiveMoles       = errors.New("amount of substance must be greater than 0 mol")
	ErrInvalidPurity          = errors.New("purity must be greater than 0%")
	ErrInvalidMolecularWeight = errors.New("molecular weight must be greater than 0 g/mol")
)

type Input struct {
	MolecularWeight float64
	Moles           float64
	PurityPercent   float64
	Unit            Unit
}

type Result struct {
	Input Input
	Grams float64
	// Mass is Grams expressed in Input.Unit.
	Mass float64
}

// CalculateMass returns the mass of an impure sample that contains the requested moles:
// moles × molecular weight / (purity / 100).
func CalculateMass(input Input) (Result, error) {
	if !isFinitePositive(input.Moles) {
		return Result{}, ErrNonPositiveMoles
	}
	if !isFinitePositive(input.PurityPercent) {
		return Result{}, ErrInvalidPurity
	}
	if !isFinitePositive(input.MolecularWeight) {
		return Result{}, ErrInvalidMolecularWeight
	}

	grams := (input.Moles * input.MolecularWeight) / (input.PurityPercent / 100)
	mass, err := input.Unit.fromGrams(grams)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Input: input,
		Grams: grams,
		Mass:  mass,
	}, nil
}

func isFinitePositive(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}

// Formatted renders the mass with 4 decimal places.
func (r Result) Formatted() string {
	return strconv.FormatFloat(r.Mass, 'f', 4, 64)
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s", r.Formatted(), r.Input.Unit)
}

// Expression shows the calculation that produced the result.
func (r Result) Expression() string {
	return fmt.Sprintf("(%s mol × %s g/mol) / %s%%",
		strconv.FormatFloat(r.Input.Moles, 'f', -1, 64),
		strconv.FormatFloat(r.Input.MolecularWeight, 'f', -1, 64),
		strconv.FormatFloat(r.Input.PurityPercent, 'f', -1, 64),
	)
}

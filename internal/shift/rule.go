package shift

import (
	"fmt"
	"math"
)

// Rule holds the coefficients of a two-term parameter-shift rule:
// the derivative of the expectation with respect to one parameter is
//
//	Scale * (E(θ + Shift) - E(θ - Shift))
//
// For gates generated by an operator with eigenvalues ±1/2 (the Pauli
// rotations RX, RY, RZ), DefaultRule is exact, not an approximation.
type Rule struct {
	Shift float64
	Scale float64
}

// DefaultRule is the standard ±π/2 shift with scale 1/2, exact for
// generators with eigenvalues ±1/2.
var DefaultRule = Rule{Shift: math.Pi / 2, Scale: 0.5}

// RuleForShift returns the exact two-term rule for the same gate class
// evaluated at an arbitrary shift s: scale 1/(2·sin s).
//
// Fails if sin(s) is zero, where the two evaluations coincide and the
// rule degenerates.
func RuleForShift(s float64) (Rule, error) {
	sin := math.Sin(s)
	if sin == 0 {
		return Rule{}, fmt.Errorf("degenerate shift %v: sin(shift) must be non-zero", s)
	}
	return Rule{Shift: s, Scale: 1 / (2 * sin)}, nil
}

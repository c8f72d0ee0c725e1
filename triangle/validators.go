// SPDX-License-Identifier: MIT
// Package: triangle
//
// Purpose:
//   - Pure predicates shared by the constructors and the solver.
//   - No allocation beyond the slice header handed to gonum.

package triangle

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ValidSides reports whether sides can be the sides of a triangle:
// every side finite and strictly positive, and the longest side strictly
// shorter than the sum of the other two.
func ValidSides(sides [3]float64) bool {
	for _, s := range sides {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return false
		}
	}
	m := MaxSide(sides)

	return m < floats.Sum(sides[:])-m
}

// ValidAngleSum reports whether angles sum to π within
// DefaultAngleSumTolerance.
func ValidAngleSum(angles [3]float64) bool {
	return angleSumWithin(angles, DefaultAngleSumTolerance)
}

// angleSumWithin is ValidAngleSum with an explicit tolerance.
func angleSumWithin(angles [3]float64, eps float64) bool {
	return math.Abs(floats.Sum(angles[:])-math.Pi) < eps
}

// MaxSide returns the longest of the three sides.
func MaxSide(sides [3]float64) float64 {
	return floats.Max(sides[:])
}

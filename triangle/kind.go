package triangle

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultKindTolerance is the tolerance used when comparing sides for
// equality and the largest cosine against zero.
const DefaultKindTolerance = 1e-9

// SideKind classifies a triangle by how many of its sides are equal.
type SideKind int

const (
	// NotATriangle is reported for a record without sides (the zero value).
	NotATriangle SideKind = iota
	Equilateral
	Isosceles
	Scalene
)

// String returns the kind name.
func (k SideKind) String() string {
	switch k {
	case Equilateral:
		return "equilateral"
	case Isosceles:
		return "isosceles"
	case Scalene:
		return "scalene"
	default:
		return "not a triangle"
	}
}

// AngleKind classifies a triangle by its largest angle.
type AngleKind int

const (
	// NoAngle is reported for a record without sides (the zero value).
	NoAngle AngleKind = iota
	Acute
	Right
	Obtuse
)

// String returns the kind name.
func (k AngleKind) String() string {
	switch k {
	case Acute:
		return "acute"
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	default:
		return "no angle"
	}
}

// SideKind compares the sides pairwise, relative to their size.
// It reads through the cache and never stores.
func (t *Triangle) SideKind() SideKind {
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return NotATriangle
	}
	eq := func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, DefaultKindTolerance, DefaultKindTolerance)
	}
	switch n := btoi(eq(s0, s1)) + btoi(eq(s1, s2)) + btoi(eq(s0, s2)); {
	case n >= 2:
		return Equilateral
	case n == 1:
		return Isosceles
	default:
		return Scalene
	}
}

// AngleKind looks at the cosine of the angle opposite the longest side.
// It reads through the cache and never stores.
func (t *Triangle) AngleKind() AngleKind {
	s, ok := t.Sides()
	if !ok {
		return NoAngle
	}
	longest := 0
	for i := 1; i < 3; i++ {
		if s[i] > s[longest] {
			longest = i
		}
	}
	c, _ := t.Cosine(longest)
	switch {
	case scalar.EqualWithinAbs(c, 0, DefaultKindTolerance):
		return Right
	case math.Signbit(c):
		return Obtuse
	default:
		return Acute
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

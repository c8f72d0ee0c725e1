package triangle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solve reduces a partial set of sides and angles (radians) to three side
// lengths.
//
// Algorithm Outline:
//  1. Two known angles: the third is π minus their sum.
//  2. Classify the input shape (see Case).
//  3. Dispatch:
//     CaseThreeSides        → sides as given, angles ignored
//     CaseIncludedAngle     → c = sqrt(a² + b² − 2ab·cos C) for the missing side
//     CaseSideAllAngles     → side[i] = v·sin(angle[i]) / sin(angle[k])
//     CaseNonIncludedAngle  → ErrAmbiguous
//     CaseUnderdetermined   → ErrUnderdetermined
//
// When three angles take part (every case but CaseThreeSides), their sum is
// checked against π; see WithAngleSumTolerance and WithLenientAngleSum.
//
// Solve does not validate the resulting sides. Blank and FromSides do, and
// New chains Solve into FromSides.
//
// Errors:
//   - ErrOptionViolation — an Option carried a nonsensical value.
//   - ErrUnderdetermined — not enough input.
//   - ErrAmbiguous       — two sides with a non-included angle.
//   - ErrAngleSum        — three angles off π (strict mode only).
//
// Complexity: O(1).
func Solve(sides, angles [3]Measure, opts ...Option) ([3]float64, error) {
	var out [3]float64

	o, err := gatherOptions(opts)
	if err != nil {
		return out, err
	}

	angles = completeAngles(angles)
	c, k := classify(sides, angles)

	switch c {
	case CaseThreeSides:
		return values(sides), nil

	case CaseIncludedAngle:
		if err = o.checkAngleSum(angles); err != nil {
			return out, err
		}
		out = values(sides)
		a, b := out[(k+1)%3], out[(k+2)%3]
		out[k] = lawOfCosines(a, b, angles[k].Value)

		return out, nil

	case CaseSideAllAngles:
		if err = o.checkAngleSum(angles); err != nil {
			return out, err
		}
		return lawOfSines(sides[k].Value, k, values(angles)), nil

	case CaseNonIncludedAngle:
		return out, ErrAmbiguous

	case CaseUnderdetermined:
		return out, ErrUnderdetermined
	}

	return out, fmt.Errorf("%w: unhandled case %v", ErrUnderdetermined, c)
}

// completeAngles fills the third angle when exactly two are known.
// Any other input is returned unchanged.
func completeAngles(angles [3]Measure) [3]Measure {
	if countKnown(angles) != 2 {
		return angles
	}
	i := firstUnknown(angles)
	angles[i] = Of(math.Pi - angles[(i+1)%3].Value - angles[(i+2)%3].Value)

	return angles
}

// checkAngleSum enforces the angle-sum law when all three angles are known.
func (o Options) checkAngleSum(angles [3]Measure) error {
	if countKnown(angles) < 3 {
		return nil
	}
	v := values(angles)
	if angleSumWithin(v, o.AngleSumTolerance) || o.LenientAngleSum {
		return nil
	}
	return fmt.Errorf("%w: sum=%v", ErrAngleSum, floats.Sum(v[:]))
}

// lawOfCosines returns the side opposite angle c between sides a and b.
func lawOfCosines(a, b, c float64) float64 {
	return math.Sqrt(a*a + b*b - 2*a*b*math.Cos(c))
}

// lawOfSines scales the known side v at index k by the ratio of sines.
func lawOfSines(v float64, k int, angles [3]float64) [3]float64 {
	var out [3]float64
	sk := math.Sin(angles[k])
	for i := range out {
		if i == k {
			out[i] = v
			continue
		}
		out[i] = v * math.Sin(angles[i]) / sk
	}
	return out
}

// values strips the Known flags; unknown entries read as 0.
func values(m [3]Measure) [3]float64 {
	return [3]float64{m[0].Value, m[1].Value, m[2].Value}
}

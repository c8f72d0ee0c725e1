// Package triangle solves a triangle from a partial set of sides and angles
// and derives every other quantity lazily, caching each one on request.
//
// What
//
//   - Solve reduces up to three sides and up to three angles to the unique
//     three side lengths, or reports why it cannot:
//   - three sides: angles are ignored, sides always win
//   - two angles: the third is π minus the other two
//   - two sides + the included angle: law of cosines
//   - one side + three angles: law of sines
//   - two sides + a non-included angle: rejected (ErrAmbiguous)
//   - anything less: rejected (ErrUnderdetermined)
//   - Triangle owns the three sides plus sixteen derived slots (perimeter,
//     area, inradius, circumradius, and per-index heights, medians, angles,
//     sines, cosines, tangents).
//
// Index convention
//
//	sides[i] defines the order of every array. angles[i] is opposite sides[i],
//	heights[i] is the altitude onto sides[i] (sides[i]·heights[i]/2 = area),
//	medians[i] starts at the midpoint of sides[i]. Angles are in radians;
//	see Degrees and Radians for conversion.
//
// Read vs. cache
//
//	Every quantity has two accessors:
//	  - Area(), Height(i), ...            read-only; compute-if-absent, never store
//	  - CacheArea(), CacheHeight(i), ...  compute-if-absent and store
//	A Cache* call first caches its direct dependencies, so the derivation
//	graph is filled bottom-up:
//
//	  sides → perimeter → area → {heights, inradius, circumradius, sines}
//	  sides → {medians, cosines} → angles → tangents
//
//	A filled slot is never recomputed. Constructors:
//	  - Blank     validate sides, leave every derived slot empty
//	  - FromSides validate sides, then CacheAll
//	  - New       Solve, then FromSides
//
// Errors
//
//	Constructors return package sentinels (ErrInvalidSides, ErrUnderdetermined,
//	ErrAmbiguous, ErrAngleSum, ErrOptionViolation); match them with errors.Is.
//	Accessors use the comma-ok form and report false for an index outside
//	0..2 or for a quantity whose inputs are missing. Nothing panics on input.
//
// Concurrency
//
//	No locks. Cache* methods need exclusive access to the Triangle; read-only
//	accessors never write and may be called from many goroutines at once.
//
// Example
//
//	t, err := triangle.New(
//		[3]triangle.Measure{triangle.Of(1), triangle.Unknown, triangle.Unknown},
//		[3]triangle.Measure{triangle.Of(1.0), triangle.Of(0.5), triangle.Unknown},
//	)
//	if err != nil {
//		// handle
//	}
//	r, _ := t.Circumradius() // ≈ 0.594
package triangle

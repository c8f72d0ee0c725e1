// SPDX-License-Identifier: MIT

package triangle

import "errors"

// Sentinel errors returned by Solve and the constructors.
// Every message is prefixed with "triangle: ". Callers match with errors.Is;
// context, when added, is wrapped with %w.
var (
	// ErrInvalidSides indicates a non-finite or non-positive side, or a
	// violation of the strict triangle inequality.
	ErrInvalidSides = errors.New("triangle: sides do not form a triangle")

	// ErrUnderdetermined indicates too few sides/angles to fix a triangle:
	// no side, one side with fewer than three angles, or two sides with no angle.
	ErrUnderdetermined = errors.New("triangle: not enough sides and angles to solve")

	// ErrAmbiguous indicates two sides and a non-included angle (SSA);
	// up to two triangles fit and none is chosen.
	ErrAmbiguous = errors.New("triangle: two sides with a non-included angle are ambiguous")

	// ErrAngleSum indicates three angles whose sum is not π within tolerance.
	ErrAngleSum = errors.New("triangle: angles do not sum to pi")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("triangle: invalid option supplied")
)

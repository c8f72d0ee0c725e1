// SPDX-License-Identifier: MIT

package triangle

import "fmt"

// DefaultAngleSumTolerance is the absolute tolerance on |Σangles − π|.
const DefaultAngleSumTolerance = 1e-13

// Option configures Solve and New via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the solver policy.
type Options struct {
	// AngleSumTolerance bounds |a0+a1+a2 − π| when three angles take part
	// in solving.
	AngleSumTolerance float64

	// LenientAngleSum, when true, still evaluates the angle-sum check but
	// ignores its result, so inconsistent angles are used as given.
	LenientAngleSum bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - AngleSumTolerance = DefaultAngleSumTolerance
//   - LenientAngleSum   = false (angle-sum law enforced)
func DefaultOptions() Options {
	return Options{
		AngleSumTolerance: DefaultAngleSumTolerance,
		LenientAngleSum:   false,
	}
}

// WithAngleSumTolerance sets the angle-sum tolerance.
//
//	eps >= 0: use eps
//	eps < 0 or NaN: invalid option → ErrOptionViolation
func WithAngleSumTolerance(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) {
			o.err = fmt.Errorf("%w: AngleSumTolerance must be non-negative (%v)", ErrOptionViolation, eps)
			return
		}
		o.AngleSumTolerance = eps
	}
}

// WithLenientAngleSum accepts three angles that do not sum to π and solves
// with them as given.
func WithLenientAngleSum() Option {
	return func(o *Options) {
		o.LenientAngleSum = true
	}
}

// gatherOptions folds opts over the defaults and returns the first
// recorded violation, if any.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}

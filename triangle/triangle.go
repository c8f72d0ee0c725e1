package triangle

import "fmt"

// New solves the triangle from a partial set of sides and angles and
// returns it with every derived quantity cached.
//
// The angles only serve to find missing sides and are then dropped, so an
// input angle of 0.5 may read back as 0.49999999999999994. Sides take
// precedence: with three sides given, angles are not even looked at.
//
// Errors: any error of Solve, or ErrInvalidSides when the solved sides do
// not form a triangle.
func New(sides, angles [3]Measure, opts ...Option) (*Triangle, error) {
	resolved, err := Solve(sides, angles, opts...)
	if err != nil {
		return nil, err
	}
	return FromSides(resolved)
}

// FromSides returns the triangle with the given sides and every derived
// quantity cached.
func FromSides(sides [3]float64) (*Triangle, error) {
	t, err := Blank(sides)
	if err != nil {
		return nil, err
	}
	t.CacheAll()

	return t, nil
}

// Blank returns the triangle with the given sides and all derived slots
// empty; quantities are computed on first access.
//
// Errors: ErrInvalidSides unless ValidSides(sides).
func Blank(sides [3]float64) (*Triangle, error) {
	if !ValidSides(sides) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSides, sides)
	}

	t := &Triangle{}
	for i, s := range sides {
		t.sides[i] = slot{v: s, ok: true}
	}
	return t, nil
}

// CacheAll fills every derived slot, dependencies first.
func (t *Triangle) CacheAll() {
	t.CachePerimeter()
	t.CacheArea()
	t.CacheHeights()
	t.CacheMedians()
	t.CacheInradius()
	t.CacheCircumradius()
	t.CacheSines()
	t.CacheCosines()
	t.CacheAngles()
	t.CacheTangents()
}

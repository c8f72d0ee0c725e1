// Package triangle defines the input measure, the cache cell and the
// Triangle record.
package triangle

// Measure is an input quantity that may or may not be known.
// The zero value is Unknown.
type Measure struct {
	Value float64
	Known bool
}

// Unknown is the absent Measure.
var Unknown = Measure{}

// Of returns a known Measure holding v.
func Of(v float64) Measure {
	return Measure{Value: v, Known: true}
}

// slot is a single memoized quantity: unset until ok is true.
type slot struct {
	v  float64
	ok bool
}

// get returns the stored value and whether the slot is set.
func (s slot) get() (float64, bool) {
	return s.v, s.ok
}

// put stores v when ok is true and echoes (v, ok) back to the caller.
// An absent result leaves the slot untouched.
func (s *slot) put(v float64, ok bool) (float64, bool) {
	if ok {
		s.v, s.ok = v, true
	}
	return v, ok
}

// Triangle is a lazily derived triangle record.
//
// sides are fixed by the constructor; all other slots start empty and are
// filled only by the Cache* methods. Index i refers to the same element in
// every array: the side, the angle opposite it, the height onto it, the
// median from its midpoint and the ratios of that angle.
//
// The zero value is an empty record on which every accessor reports absence.
type Triangle struct {
	sides    [3]slot
	heights  [3]slot
	medians  [3]slot
	angles   [3]slot
	sines    [3]slot
	cosines  [3]slot
	tangents [3]slot

	perimeter    slot
	area         slot
	inradius     slot
	circumradius slot
}

// inRange reports whether i addresses one of the three sides.
func inRange(i int) bool {
	return i >= 0 && i < 3
}

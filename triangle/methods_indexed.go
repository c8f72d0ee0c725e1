package triangle

import "math"

// Side returns sides[i].
func (t *Triangle) Side(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	return t.sides[i].get()
}

// Height returns the altitude onto sides[i]: 2·area / sides[i].
func (t *Triangle) Height(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.heights[i].get(); ok {
		return v, true
	}
	a, ok := t.Area()
	if !ok {
		return 0, false
	}
	s, ok := t.sides[i].get()
	if !ok {
		return 0, false
	}
	return 2 * a / s, true
}

// CacheHeight caches the area, then heights[i].
func (t *Triangle) CacheHeight(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.heights[i].get(); ok {
		return v, true
	}
	t.CacheArea()
	return t.heights[i].put(t.Height(i))
}

// Median returns the median from the midpoint of sides[i]:
// sqrt((2·(s0²+s1²+s2²) − 3·sides[i]²) / 4).
func (t *Triangle) Median(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.medians[i].get(); ok {
		return v, true
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	si := t.sides[i].v
	return math.Sqrt((2*(s0*s0+s1*s1+s2*s2) - 3*si*si) / 4), true
}

// CacheMedian computes medians[i] if needed and stores it.
func (t *Triangle) CacheMedian(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.medians[i].get(); ok {
		return v, true
	}
	return t.medians[i].put(t.Median(i))
}

// Sine returns the sine of angles[i] without going through the angle:
// 2·area·sides[i] / (s0·s1·s2), i.e. sides[i] / (2R).
func (t *Triangle) Sine(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.sines[i].get(); ok {
		return v, true
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	a, ok := t.Area()
	if !ok {
		return 0, false
	}
	return 2 * a * t.sides[i].v / (s0 * s1 * s2), true
}

// CacheSine caches the area, then sines[i].
func (t *Triangle) CacheSine(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.sines[i].get(); ok {
		return v, true
	}
	t.CacheArea()
	return t.sines[i].put(t.Sine(i))
}

// Cosine returns the cosine of angles[i] by the law of cosines:
// sides[i]·(s0²+s1²+s2² − 2·sides[i]²) / (2·s0·s1·s2).
func (t *Triangle) Cosine(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.cosines[i].get(); ok {
		return v, true
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	si := t.sides[i].v
	return si * (s0*s0 + s1*s1 + s2*s2 - 2*si*si) / (2 * s0 * s1 * s2), true
}

// CacheCosine computes cosines[i] if needed and stores it.
func (t *Triangle) CacheCosine(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.cosines[i].get(); ok {
		return v, true
	}
	return t.cosines[i].put(t.Cosine(i))
}

// Angle returns angles[i] in radians as arccos(cosine[i]).
func (t *Triangle) Angle(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.angles[i].get(); ok {
		return v, true
	}
	c, ok := t.Cosine(i)
	if !ok {
		return 0, false
	}
	// rounding can push a near-degenerate cosine just past ±1
	return math.Acos(math.Max(-1, math.Min(1, c))), true
}

// CacheAngle caches cosines[i], then angles[i].
func (t *Triangle) CacheAngle(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.angles[i].get(); ok {
		return v, true
	}
	t.CacheCosine(i)
	return t.angles[i].put(t.Angle(i))
}

// Tangent returns tan(angles[i]).
func (t *Triangle) Tangent(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.tangents[i].get(); ok {
		return v, true
	}
	a, ok := t.Angle(i)
	if !ok {
		return 0, false
	}
	return math.Tan(a), true
}

// CacheTangent caches angles[i], then tangents[i].
func (t *Triangle) CacheTangent(i int) (float64, bool) {
	if !inRange(i) {
		return 0, false
	}
	if v, ok := t.tangents[i].get(); ok {
		return v, true
	}
	t.CacheAngle(i)
	return t.tangents[i].put(t.Tangent(i))
}

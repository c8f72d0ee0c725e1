package triangle

// pointwise applies f to indices 0, 1, 2 in order.
// ok is true only if every call succeeded; absent entries stay 0.
func pointwise(f func(int) (float64, bool)) ([3]float64, bool) {
	var out [3]float64
	all := true
	for i := range out {
		v, ok := f(i)
		if !ok {
			all = false
			continue
		}
		out[i] = v
	}
	return out, all
}

// Sides returns the three sides.
func (t *Triangle) Sides() ([3]float64, bool) { return pointwise(t.Side) }

// Heights returns Height(0..2).
func (t *Triangle) Heights() ([3]float64, bool) { return pointwise(t.Height) }

// CacheHeights caches Height(0..2).
func (t *Triangle) CacheHeights() ([3]float64, bool) { return pointwise(t.CacheHeight) }

// Medians returns Median(0..2).
func (t *Triangle) Medians() ([3]float64, bool) { return pointwise(t.Median) }

// CacheMedians caches Median(0..2).
func (t *Triangle) CacheMedians() ([3]float64, bool) { return pointwise(t.CacheMedian) }

// Angles returns Angle(0..2) in radians.
func (t *Triangle) Angles() ([3]float64, bool) { return pointwise(t.Angle) }

// CacheAngles caches Angle(0..2).
func (t *Triangle) CacheAngles() ([3]float64, bool) { return pointwise(t.CacheAngle) }

// Sines returns Sine(0..2).
func (t *Triangle) Sines() ([3]float64, bool) { return pointwise(t.Sine) }

// CacheSines caches Sine(0..2).
func (t *Triangle) CacheSines() ([3]float64, bool) { return pointwise(t.CacheSine) }

// Cosines returns Cosine(0..2).
func (t *Triangle) Cosines() ([3]float64, bool) { return pointwise(t.Cosine) }

// CacheCosines caches Cosine(0..2).
func (t *Triangle) CacheCosines() ([3]float64, bool) { return pointwise(t.CacheCosine) }

// Tangents returns Tangent(0..2).
func (t *Triangle) Tangents() ([3]float64, bool) { return pointwise(t.Tangent) }

// CacheTangents caches Tangent(0..2).
func (t *Triangle) CacheTangents() ([3]float64, bool) { return pointwise(t.CacheTangent) }

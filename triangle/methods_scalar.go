package triangle

import "math"

// Perimeter returns s0 + s1 + s2.
func (t *Triangle) Perimeter() (float64, bool) {
	if v, ok := t.perimeter.get(); ok {
		return v, true
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	return s0 + s1 + s2, true
}

// CachePerimeter computes the perimeter if needed and stores it.
func (t *Triangle) CachePerimeter() (float64, bool) {
	if v, ok := t.perimeter.get(); ok {
		return v, true
	}
	return t.perimeter.put(t.Perimeter())
}

// Area returns the area by Heron's formula over the semi-perimeter.
func (t *Triangle) Area() (float64, bool) {
	if v, ok := t.area.get(); ok {
		return v, true
	}
	p, ok := t.Perimeter()
	if !ok {
		return 0, false
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	sp := p / 2
	return math.Sqrt(sp * (sp - s0) * (sp - s1) * (sp - s2)), true
}

// CacheArea caches the perimeter, then the area.
func (t *Triangle) CacheArea() (float64, bool) {
	if v, ok := t.area.get(); ok {
		return v, true
	}
	t.CachePerimeter()
	return t.area.put(t.Area())
}

// Inradius returns 2·area / perimeter.
func (t *Triangle) Inradius() (float64, bool) {
	if v, ok := t.inradius.get(); ok {
		return v, true
	}
	a, ok := t.Area()
	if !ok {
		return 0, false
	}
	p, ok := t.Perimeter()
	if !ok {
		return 0, false
	}
	return 2 * a / p, true
}

// CacheInradius caches area and perimeter, then the inradius.
func (t *Triangle) CacheInradius() (float64, bool) {
	if v, ok := t.inradius.get(); ok {
		return v, true
	}
	t.CacheArea()
	t.CachePerimeter()
	return t.inradius.put(t.Inradius())
}

// Circumradius returns s0·s1·s2 / (4·area).
func (t *Triangle) Circumradius() (float64, bool) {
	if v, ok := t.circumradius.get(); ok {
		return v, true
	}
	a, ok := t.Area()
	if !ok {
		return 0, false
	}
	s0, s1, s2, ok := t.allSides()
	if !ok {
		return 0, false
	}
	return s0 * s1 * s2 / (4 * a), true
}

// CacheCircumradius caches the area, then the circumradius.
func (t *Triangle) CacheCircumradius() (float64, bool) {
	if v, ok := t.circumradius.get(); ok {
		return v, true
	}
	t.CacheArea()
	return t.circumradius.put(t.Circumradius())
}

// allSides unpacks the three sides; ok is false if any is missing.
func (t *Triangle) allSides() (s0, s1, s2 float64, ok bool) {
	if !t.sides[0].ok || !t.sides[1].ok || !t.sides[2].ok {
		return 0, 0, 0, false
	}
	return t.sides[0].v, t.sides[1].v, t.sides[2].v, true
}

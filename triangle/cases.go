package triangle

// Case names the shape of a side/angle input, i.e. which solving rule
// applies. The set is closed; Solve switches over it exhaustively.
type Case int

const (
	// CaseUnderdetermined: no side, one side with fewer than three angles
	// (after completing two angles to three), or two sides with no angle.
	CaseUnderdetermined Case = iota

	// CaseThreeSides: all three sides known; angles are ignored.
	CaseThreeSides

	// CaseIncludedAngle: two sides and the angle between them, i.e. the
	// angle opposite the missing side.
	CaseIncludedAngle

	// CaseNonIncludedAngle: two sides and only an angle adjacent to one of
	// them (SSA). Rejected as ambiguous.
	CaseNonIncludedAngle

	// CaseSideAllAngles: one side and three angles (two given angles
	// count, since the third follows).
	CaseSideAllAngles
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case CaseUnderdetermined:
		return "underdetermined"
	case CaseThreeSides:
		return "three sides"
	case CaseIncludedAngle:
		return "two sides + included angle"
	case CaseNonIncludedAngle:
		return "two sides + non-included angle"
	case CaseSideAllAngles:
		return "one side + three angles"
	default:
		return "unknown"
	}
}

// Classify reports which Case the given input falls into.
// It does not look at the values, only at which positions are known.
func Classify(sides, angles [3]Measure) Case {
	c, _ := classify(sides, completeAngles(angles))

	return c
}

// classify maps an input whose angles are already completed onto a Case.
// The returned index is the missing side for CaseIncludedAngle, the known
// side for CaseSideAllAngles, and -1 otherwise.
func classify(sides, angles [3]Measure) (Case, int) {
	s, a := countKnown(sides), countKnown(angles)

	switch {
	case s == 3:
		return CaseThreeSides, -1
	case s == 2 && a == 0:
		return CaseUnderdetermined, -1
	case s == 2:
		missing := firstUnknown(sides)
		if angles[missing].Known {
			return CaseIncludedAngle, missing
		}
		return CaseNonIncludedAngle, -1
	case s == 1 && a == 3:
		return CaseSideAllAngles, firstKnown(sides)
	default:
		return CaseUnderdetermined, -1
	}
}

// countKnown counts the known entries of m.
func countKnown(m [3]Measure) int {
	n := 0
	for _, v := range m {
		if v.Known {
			n++
		}
	}
	return n
}

func firstKnown(m [3]Measure) int {
	for i, v := range m {
		if v.Known {
			return i
		}
	}
	return -1
}

func firstUnknown(m [3]Measure) int {
	for i, v := range m {
		if !v.Known {
			return i
		}
	}
	return -1
}

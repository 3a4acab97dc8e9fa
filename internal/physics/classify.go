package physics

import "math"

// Severity grades tidal acceleration relative to Earth surface gravity.
type Severity int

const (
	Negligible Severity = iota
	Noticeable
	VeryStrong
	Extreme
)

func (s Severity) String() string {
	switch s {
	case Negligible:
		return "Negligible"
	case Noticeable:
		return "Noticeable"
	case VeryStrong:
		return "Very Strong"
	case Extreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// ParseSeverity maps a display label back to its severity grade.
func ParseSeverity(label string) (Severity, bool) {
	for _, s := range []Severity{Negligible, Noticeable, VeryStrong, Extreme} {
		if s.String() == label {
			return s, true
		}
	}
	return 0, false
}

// Classification breakpoints, in multiples of Earth surface gravity. Each
// boundary belongs to the upper bin: a ratio of exactly 0.1 is Noticeable.
const (
	NoticeableRatio = 0.1
	VeryStrongRatio = 1.0
	ExtremeRatio    = 10.0
)

// Classification pairs a severity grade with the ratio that produced it and
// a fixed human-readable rationale. Callers own all formatting.
type Classification struct {
	Severity  Severity
	Ratio     float64
	Rationale string
}

var rationales = map[Severity]string{
	Negligible: "The difference in gravity between your head and feet is tiny. " +
		"You would not really feel stretched by the black hole at this distance.",
	Noticeable: "Tidal forces are stronger than on Earth, and you would feel a clear " +
		"difference in pull between your head and feet, but this is not yet the " +
		"instant-spaghetti regime.",
	VeryStrong: "Gravity at your feet is much stronger than at your head. Your body " +
		"would be under intense stress, and the onset of spaghettification would be " +
		"serious and likely fatal over time.",
	Extreme: "This is deep in the spaghettification regime. The difference in " +
		"gravitational pull across your body is so huge that no human (or spacecraft) " +
		"could structurally survive it.",
}

// ClassifyRatio buckets a tidal-to-Earth-gravity ratio into one of the four
// severity grades. The bins partition [0, +Inf) with no gaps or overlaps.
// Negative or NaN ratios are rejected.
func ClassifyRatio(ratio float64) (Classification, error) {
	if ratio < 0 || math.IsNaN(ratio) {
		return Classification{}, ErrNegativeRatio
	}
	var sev Severity
	switch {
	case ratio < NoticeableRatio:
		sev = Negligible
	case ratio < VeryStrongRatio:
		sev = Noticeable
	case ratio < ExtremeRatio:
		sev = VeryStrong
	default:
		sev = Extreme
	}
	return Classification{Severity: sev, Ratio: ratio, Rationale: rationales[sev]}, nil
}

// Classify grades a tidal acceleration in m/s^2 against Earth surface gravity.
func Classify(deltaG float64) (Classification, error) {
	return ClassifyRatio(deltaG / EarthGravity)
}

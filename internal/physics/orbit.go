package physics

import "math"

// KeplerOrbitalPeriod returns the Newtonian circular-orbit period in seconds:
//
//	P = 2π·sqrt(r^3 / (GM))
//
// The formula is only physically meaningful strictly outside the event
// horizon. Callers must guard with r > SchwarzschildRadius(m); [Evaluate]
// applies that guard and reports an absent period otherwise.
func KeplerOrbitalPeriod(massKg, radiusM float64) (float64, error) {
	if !positive(massKg) {
		return 0, ErrNonPositiveMass
	}
	if !positive(radiusM) {
		return 0, ErrNonPositiveRadius
	}
	return 2 * math.Pi * math.Sqrt(radiusM*radiusM*radiusM/(G*massKg)), nil
}

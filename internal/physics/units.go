package physics

import "math"

// SolarMassToKilograms converts a mass in solar masses to kilograms.
func SolarMassToKilograms(mSolar float64) (float64, error) {
	if !positive(mSolar) {
		return 0, ErrNonPositiveMass
	}
	return mSolar * SolarMassKg, nil
}

// positive reports whether v is a finite value strictly greater than zero.
// NaN compares false against everything, so only +Inf needs an explicit check.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

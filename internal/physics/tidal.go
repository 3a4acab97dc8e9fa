package physics

import "math"

// TidalAcceleration approximates the stretch across a body of height heightM
// whose near end sits at radiusM:
//
//	Δg ≈ |g(r) - g(r+h)|
//
// The forward difference, not the analytic gradient 2GMh/r^3, is the defining
// formula here; the two differ at the few-percent level for finite heights and
// the classification breakpoints are calibrated against this one. Since g is
// strictly decreasing in r the result is non-negative; the absolute value only
// guards rounding.
func TidalAcceleration(massKg, radiusM, heightM float64) (float64, error) {
	if !positive(heightM) {
		return 0, ErrNonPositiveHeight
	}
	gNear, err := GravityAtRadius(massKg, radiusM)
	if err != nil {
		return 0, err
	}
	gFar, err := GravityAtRadius(massKg, radiusM+heightM)
	if err != nil {
		return 0, err
	}
	return math.Abs(gNear - gFar), nil
}

package physics

// SchwarzschildRadius returns r_s = 2GM/c^2 in meters, the event horizon
// radius of a non-rotating mass. This is the exact form of the "~3 km per
// solar mass" rule: one solar mass gives roughly 2954 m.
func SchwarzschildRadius(massKg float64) (float64, error) {
	if !positive(massKg) {
		return 0, ErrNonPositiveMass
	}
	return 2 * G * massKg / (C * C), nil
}

// GravityAtRadius returns the Newtonian acceleration g(r) = GM/r^2 in m/s^2
// at distance radiusM from the center. radiusM = 0 sits on the point-mass
// singularity and is rejected with ErrNonPositiveRadius, never mapped to +Inf.
func GravityAtRadius(massKg, radiusM float64) (float64, error) {
	if !positive(massKg) {
		return 0, ErrNonPositiveMass
	}
	if !positive(radiusM) {
		return 0, ErrNonPositiveRadius
	}
	return G * massKg / (radiusM * radiusM), nil
}

package physics

// Result bundles every derived quantity for one query. Values are SI; the
// caller owns unit display and formatting.
type Result struct {
	SchwarzschildRadiusM float64
	GravityMS2           float64
	GravityEarthRatio    float64
	TidalMS2             float64
	TidalEarthRatio      float64
	Classification       Classification

	periodS   float64
	hasPeriod bool
}

// OrbitalPeriod reports the Newtonian circular-orbit period in seconds.
// ok is false at and below the Schwarzschild radius, where no such orbit
// exists; the boundary itself counts as no orbit.
func (r Result) OrbitalPeriod() (seconds float64, ok bool) {
	return r.periodS, r.hasPeriod
}

// Evaluate computes the full quantity bundle for a mass in kilograms, a
// distance from the center in meters and a body height in meters. It is the
// single shared formula block behind every shell.
func Evaluate(massKg, radiusM, heightM float64) (Result, error) {
	rs, err := SchwarzschildRadius(massKg)
	if err != nil {
		return Result{}, err
	}
	g, err := GravityAtRadius(massKg, radiusM)
	if err != nil {
		return Result{}, err
	}
	dg, err := TidalAcceleration(massKg, radiusM, heightM)
	if err != nil {
		return Result{}, err
	}
	cls, err := Classify(dg)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		SchwarzschildRadiusM: rs,
		GravityMS2:           g,
		GravityEarthRatio:    g / EarthGravity,
		TidalMS2:             dg,
		TidalEarthRatio:      dg / EarthGravity,
		Classification:       cls,
	}

	// Strict inequality: exactly at r_s there is no circular orbit.
	if radiusM > rs {
		p, err := KeplerOrbitalPeriod(massKg, radiusM)
		if err != nil {
			return Result{}, err
		}
		res.periodS = p
		res.hasPeriod = true
	}

	return res, nil
}

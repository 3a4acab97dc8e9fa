package scenario

import (
	"errors"
	"math"

	"github.com/san-kum/gravtide/internal/physics"
)

var (
	ErrBadSweepRange = errors.New("scenario: sweep range must satisfy 0 < from < to")
	ErrTooFewPoints  = errors.New("scenario: sweep needs at least two points")
)

// Sweep evaluates a scenario across a range of radii expressed as multiples
// of the Schwarzschild radius, log-spaced so that near-horizon structure and
// far-field falloff both show up in a plot.
type Sweep struct {
	Scenario   Scenario
	FromFactor float64
	ToFactor   float64
	Points     int
}

// SweepPoint is one evaluated radius of a sweep.
type SweepPoint struct {
	Factor          float64          `json:"factor"`
	RadiusKm        float64          `json:"radius_km"`
	GravityMS2      float64          `json:"gravity_ms2"`
	TidalMS2        float64          `json:"tidal_ms2"`
	TidalEarthRatio float64          `json:"tidal_earth_ratio"`
	Severity        physics.Severity `json:"-"`
	Label           string           `json:"label"`
	// PeriodS is nil for points at and inside the event horizon.
	PeriodS *float64 `json:"period_s"`
}

// Run evaluates the sweep. Points at or inside r_s carry no orbital period,
// matching the core's horizon boundary policy.
func (sw Sweep) Run() ([]SweepPoint, error) {
	if sw.Points < 2 {
		return nil, ErrTooFewPoints
	}
	if !(sw.FromFactor > 0) || sw.ToFactor <= sw.FromFactor {
		return nil, ErrBadSweepRange
	}

	mSolar, err := sw.Scenario.massSolar()
	if err != nil {
		return nil, err
	}
	massKg, err := physics.SolarMassToKilograms(mSolar)
	if err != nil {
		return nil, err
	}
	rs, err := physics.SchwarzschildRadius(massKg)
	if err != nil {
		return nil, err
	}

	height := sw.Scenario.HeightM
	if height == 0 {
		height = DefaultHeightM
	}

	logFrom := math.Log(sw.FromFactor)
	logStep := (math.Log(sw.ToFactor) - logFrom) / float64(sw.Points-1)

	points := make([]SweepPoint, 0, sw.Points)
	for i := 0; i < sw.Points; i++ {
		factor := math.Exp(logFrom + float64(i)*logStep)
		res, err := physics.Evaluate(massKg, factor*rs, height)
		if err != nil {
			return nil, err
		}

		pt := SweepPoint{
			Factor:          factor,
			RadiusKm:        factor * rs / 1000.0,
			GravityMS2:      res.GravityMS2,
			TidalMS2:        res.TidalMS2,
			TidalEarthRatio: res.TidalEarthRatio,
			Severity:        res.Classification.Severity,
			Label:           res.Classification.Severity.String(),
		}
		if p, ok := res.OrbitalPeriod(); ok {
			pt.PeriodS = &p
		}
		points = append(points, pt)
	}

	return points, nil
}

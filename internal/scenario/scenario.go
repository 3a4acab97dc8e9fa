// Package scenario turns user-facing query parameters (catalog names,
// kilometers, multiples of r_s) into the normalized SI inputs the physics
// core requires, and assembles the reported quantities for one query.
// All unit and representation branching lives here; the core only ever
// sees kilograms and meters.
package scenario

import (
	"errors"
	"fmt"

	"github.com/san-kum/gravtide/internal/catalog"
	"github.com/san-kum/gravtide/internal/physics"
)

// DistanceMode selects how Scenario.Distance is interpreted.
type DistanceMode string

const (
	// DistanceFactor reads Distance as a multiple of the Schwarzschild radius.
	DistanceFactor DistanceMode = "factor"
	// DistanceKilometers reads Distance as kilometers from the center.
	DistanceKilometers DistanceMode = "km"
)

// DefaultHeightM is the body height assumed when none is given (rough human height).
const DefaultHeightM = 2.0

var (
	ErrUnknownBlackHole    = errors.New("scenario: unknown black hole")
	ErrUnknownDistanceMode = errors.New("scenario: unknown distance mode")
)

// Scenario is one calculator query before normalization.
type Scenario struct {
	// BlackHole names a catalog entry. Empty means MassSolar is used instead.
	BlackHole string
	// MassSolar is a custom mass in solar masses, used when BlackHole is empty.
	MassSolar float64
	// Mode selects the distance representation. Empty defaults to DistanceFactor.
	Mode DistanceMode
	// Distance is a factor of r_s or kilometers, per Mode.
	Distance float64
	// HeightM is the body height in meters. Zero means DefaultHeightM.
	HeightM float64
}

func (s Scenario) massSolar() (float64, error) {
	if s.BlackHole != "" {
		bh, ok := catalog.Lookup(s.BlackHole)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownBlackHole, s.BlackHole)
		}
		return bh.SolarMasses, nil
	}
	return s.MassSolar, nil
}

// Resolve normalizes the scenario to core inputs: mass in kilograms, distance
// and height in meters. Validation of positivity happens in the core; Resolve
// only resolves representations.
func (s Scenario) Resolve() (massKg, radiusM, heightM float64, err error) {
	mSolar, err := s.massSolar()
	if err != nil {
		return 0, 0, 0, err
	}
	massKg, err = physics.SolarMassToKilograms(mSolar)
	if err != nil {
		return 0, 0, 0, err
	}

	heightM = s.HeightM
	if heightM == 0 {
		heightM = DefaultHeightM
	}

	switch s.Mode {
	case DistanceKilometers:
		radiusM = s.Distance * 1000.0
	case DistanceFactor, "":
		var rs float64
		rs, err = physics.SchwarzschildRadius(massKg)
		if err != nil {
			return 0, 0, 0, err
		}
		radiusM = s.Distance * rs
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrUnknownDistanceMode, s.Mode)
	}

	return massKg, radiusM, heightM, nil
}

// Report carries the resolved inputs and every derived quantity for one
// query, ready for rendering or export.
type Report struct {
	BlackHole string  `json:"blackhole,omitempty"`
	MassSolar float64 `json:"mass_solar"`
	MassKg    float64 `json:"mass_kg"`
	HeightM   float64 `json:"height_m"`

	SchwarzschildKm float64 `json:"schwarzschild_km"`
	RadiusKm        float64 `json:"radius_km"`
	FactorOfRs      float64 `json:"factor_of_rs"`

	GravityMS2        float64 `json:"gravity_ms2"`
	GravityEarthRatio float64 `json:"gravity_earth_ratio"`
	TidalMS2          float64 `json:"tidal_ms2"`
	TidalEarthRatio   float64 `json:"tidal_earth_ratio"`

	Severity  physics.Severity `json:"-"`
	Label     string           `json:"label"`
	Rationale string           `json:"rationale"`

	// PeriodS is nil at and below the Schwarzschild radius.
	PeriodS *float64 `json:"period_s"`
}

// OrbitalPeriod reports the orbital period in seconds; ok is false when the
// query radius does not clear the event horizon.
func (r *Report) OrbitalPeriod() (seconds float64, ok bool) {
	if r.PeriodS == nil {
		return 0, false
	}
	return *r.PeriodS, true
}

// Evaluate resolves the scenario and runs the shared formula block.
func (s Scenario) Evaluate() (*Report, error) {
	mSolar, err := s.massSolar()
	if err != nil {
		return nil, err
	}
	massKg, radiusM, heightM, err := s.Resolve()
	if err != nil {
		return nil, err
	}

	res, err := physics.Evaluate(massKg, radiusM, heightM)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		BlackHole:         s.BlackHole,
		MassSolar:         mSolar,
		MassKg:            massKg,
		HeightM:           heightM,
		SchwarzschildKm:   res.SchwarzschildRadiusM / 1000.0,
		RadiusKm:          radiusM / 1000.0,
		FactorOfRs:        radiusM / res.SchwarzschildRadiusM,
		GravityMS2:        res.GravityMS2,
		GravityEarthRatio: res.GravityEarthRatio,
		TidalMS2:          res.TidalMS2,
		TidalEarthRatio:   res.TidalEarthRatio,
		Severity:          res.Classification.Severity,
		Label:             res.Classification.Severity.String(),
		Rationale:         res.Classification.Rationale,
	}
	if p, ok := res.OrbitalPeriod(); ok {
		rep.PeriodS = &p
	}
	return rep, nil
}

package physics

import (
	"errors"
	"math"
	"testing"
)

func TestTidalAccelerationIsForwardDifference(t *testing.T) {
	massKg := 21 * SolarMassKg
	r := 1e6
	h := 2.0

	dg, err := TidalAcceleration(massKg, r, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gNear, _ := GravityAtRadius(massKg, r)
	gFar, _ := GravityAtRadius(massKg, r+h)
	expected := math.Abs(gNear - gFar)

	if dg != expected {
		t.Errorf("tidal must equal |g(r)-g(r+h)|: expected %e, got %e", expected, dg)
	}

	// The difference quotient is not the analytic gradient; for these inputs
	// the two differ measurably and the quotient is the contract.
	analytic := 2 * G * massKg * h / (r * r * r)
	if dg == analytic {
		t.Errorf("tidal formula must be the finite difference, not 2GMh/r^3")
	}
}

func TestTidalAccelerationNonNegative(t *testing.T) {
	massKg := 10 * SolarMassKg
	for _, r := range []float64{1e4, 1e6, 1e9, 1e12} {
		for _, h := range []float64{0.5, 2.0, 100.0} {
			dg, err := TidalAcceleration(massKg, r, h)
			if err != nil {
				t.Fatalf("r=%g h=%g: unexpected error: %v", r, h, err)
			}
			if dg < 0 {
				t.Errorf("r=%g h=%g: tidal acceleration must be non-negative, got %e", r, h, dg)
			}
		}
	}
}

func TestTidalAccelerationRejectsBadInputs(t *testing.T) {
	if _, err := TidalAcceleration(SolarMassKg, 1e6, 0); !errors.Is(err, ErrNonPositiveHeight) {
		t.Errorf("zero height: expected ErrNonPositiveHeight, got %v", err)
	}
	if _, err := TidalAcceleration(SolarMassKg, 0, 2.0); !errors.Is(err, ErrNonPositiveRadius) {
		t.Errorf("zero radius: expected ErrNonPositiveRadius, got %v", err)
	}
	if _, err := TidalAcceleration(0, 1e6, 2.0); !errors.Is(err, ErrNonPositiveMass) {
		t.Errorf("zero mass: expected ErrNonPositiveMass, got %v", err)
	}
}

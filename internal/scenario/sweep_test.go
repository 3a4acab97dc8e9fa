package scenario

import (
	"errors"
	"testing"
)

func TestSweepRun(t *testing.T) {
	sw := Sweep{
		Scenario:   Scenario{BlackHole: "Cygnus X-1"},
		FromFactor: 0.5,
		ToFactor:   100.0,
		Points:     50,
	}

	points, err := sw.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 50 {
		t.Fatalf("expected 50 points, got %d", len(points))
	}

	for i, pt := range points {
		if i > 0 && pt.Factor <= points[i-1].Factor {
			t.Errorf("point %d: factors must increase, %f after %f", i, pt.Factor, points[i-1].Factor)
		}
		inside := pt.Factor <= 1.0
		if inside && pt.PeriodS != nil {
			t.Errorf("point %d (%.3g r_s): period must be absent at and inside the horizon", i, pt.Factor)
		}
		if !inside && pt.PeriodS == nil {
			t.Errorf("point %d (%.3g r_s): period must be present outside the horizon", i, pt.Factor)
		}
		if pt.GravityMS2 <= 0 || pt.TidalMS2 < 0 {
			t.Errorf("point %d: non-physical values g=%e Δg=%e", i, pt.GravityMS2, pt.TidalMS2)
		}
	}

	first, last := points[0], points[len(points)-1]
	if first.Factor < 0.499 || first.Factor > 0.501 {
		t.Errorf("sweep should start at the from factor, got %f", first.Factor)
	}
	if last.Factor < 99.9 || last.Factor > 100.1 {
		t.Errorf("sweep should end at the to factor, got %f", last.Factor)
	}
}

func TestSweepTidesRelaxOutward(t *testing.T) {
	sw := Sweep{
		Scenario:   Scenario{MassSolar: 10.0},
		FromFactor: 1.0,
		ToFactor:   1000.0,
		Points:     30,
	}

	points, err := sw.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].TidalMS2 >= points[i-1].TidalMS2 {
			t.Errorf("tidal acceleration should fall with radius: point %d", i)
		}
	}
}

func TestSweepRejectsBadRanges(t *testing.T) {
	base := Scenario{MassSolar: 10.0}

	if _, err := (Sweep{Scenario: base, FromFactor: 2, ToFactor: 1, Points: 10}).Run(); !errors.Is(err, ErrBadSweepRange) {
		t.Errorf("inverted range: expected ErrBadSweepRange, got %v", err)
	}
	if _, err := (Sweep{Scenario: base, FromFactor: 0, ToFactor: 10, Points: 10}).Run(); !errors.Is(err, ErrBadSweepRange) {
		t.Errorf("zero start: expected ErrBadSweepRange, got %v", err)
	}
	if _, err := (Sweep{Scenario: base, FromFactor: 1, ToFactor: 10, Points: 1}).Run(); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("single point: expected ErrTooFewPoints, got %v", err)
	}
}

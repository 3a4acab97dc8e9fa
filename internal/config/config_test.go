package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravtide/internal/scenario"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MassSolar != DefaultMassSolar {
		t.Errorf("expected default mass %f, got %f", DefaultMassSolar, cfg.MassSolar)
	}
	if cfg.Distance.Mode != string(scenario.DistanceFactor) {
		t.Errorf("expected factor mode, got %s", cfg.Distance.Mode)
	}
	if cfg.Distance.Value <= 1.0 {
		t.Error("default distance should sit outside the horizon")
	}
	if cfg.HeightM <= 0 {
		t.Error("default height should be positive")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")

	cfg := &Config{
		BlackHole: "M87*",
		Distance:  DistanceConfig{Mode: "km", Value: 5.0e10},
		HeightM:   1.8,
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.BlackHole != "M87*" {
		t.Errorf("expected M87*, got %s", loaded.BlackHole)
	}
	if loaded.Distance.Mode != "km" || loaded.Distance.Value != 5.0e10 {
		t.Errorf("distance did not round-trip: %+v", loaded.Distance)
	}
	if loaded.HeightM != 1.8 {
		t.Errorf("expected height 1.8, got %f", loaded.HeightM)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cygnus_horizon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.BlackHole != "Cygnus X-1" {
		t.Errorf("expected Cygnus X-1, got %s", cfg.BlackHole)
	}
	if cfg.Distance.Value != 1.0 {
		t.Errorf("expected factor 1.0, got %f", cfg.Distance.Value)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q must resolve", name)
		}
	}
}

func TestScenarioMapping(t *testing.T) {
	cfg := &Config{
		MassSolar: 30.0,
		Distance:  DistanceConfig{Mode: "factor", Value: 4.0},
		HeightM:   2.0,
	}
	sc := cfg.Scenario()

	if sc.MassSolar != 30.0 || sc.Mode != scenario.DistanceFactor || sc.Distance != 4.0 {
		t.Errorf("unexpected scenario mapping: %+v", sc)
	}

	rep, err := sc.Evaluate()
	if err != nil {
		t.Fatalf("config scenario should evaluate: %v", err)
	}
	if _, ok := rep.OrbitalPeriod(); !ok {
		t.Error("4×r_s should have a defined period")
	}
}

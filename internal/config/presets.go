package config

// Presets are ready-made scenarios spanning the interesting regimes: far
// orbits, near-horizon approaches and the supermassive cases where tides at
// the horizon are famously gentle.
var Presets = map[string]*Config{
	"stellar_far": {
		MassSolar: 10.0,
		Distance:  DistanceConfig{Mode: "factor", Value: 1000.0},
		HeightM:   2.0,
	},
	"cygnus_close": {
		BlackHole: "Cygnus X-1",
		Distance:  DistanceConfig{Mode: "factor", Value: 2.0},
		HeightM:   2.0,
	},
	"cygnus_horizon": {
		BlackHole: "Cygnus X-1",
		Distance:  DistanceConfig{Mode: "factor", Value: 1.0},
		HeightM:   2.0,
	},
	"sgr_a_close": {
		BlackHole: "Sagittarius A*",
		Distance:  DistanceConfig{Mode: "factor", Value: 2.0},
		HeightM:   2.0,
	},
	"m87_horizon": {
		BlackHole: "M87*",
		Distance:  DistanceConfig{Mode: "factor", Value: 1.05},
		HeightM:   2.0,
	},
	"gw150914_orbit": {
		BlackHole: "GW150914 remnant",
		Distance:  DistanceConfig{Mode: "factor", Value: 5.0},
		HeightM:   2.0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

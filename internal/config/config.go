package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravtide/internal/scenario"
)

const (
	DefaultMassSolar = 10.0
	DefaultFactor    = 2.0
	DefaultHeight    = 2.0
)

// Config is the yaml shape of one calculator query.
type Config struct {
	BlackHole string         `yaml:"blackhole"`
	MassSolar float64        `yaml:"mass_solar"`
	Distance  DistanceConfig `yaml:"distance"`
	HeightM   float64        `yaml:"height_m"`
}

type DistanceConfig struct {
	Mode  string  `yaml:"mode"` // "factor" or "km"
	Value float64 `yaml:"value"`
}

func DefaultConfig() *Config {
	return &Config{
		MassSolar: DefaultMassSolar,
		Distance: DistanceConfig{
			Mode:  string(scenario.DistanceFactor),
			Value: DefaultFactor,
		},
		HeightM: DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scenario maps the config onto a query scenario.
func (c *Config) Scenario() scenario.Scenario {
	return scenario.Scenario{
		BlackHole: c.BlackHole,
		MassSolar: c.MassSolar,
		Mode:      scenario.DistanceMode(c.Distance.Mode),
		Distance:  c.Distance.Value,
		HeightM:   c.HeightM,
	}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStep       = 0.01
	DefaultIterations = 10000
)

// Config is the yaml-facing run configuration. Validation happens when the
// values are turned into an integrate.Config; this layer only carries them.
type Config struct {
	Family     string    `yaml:"family"`
	Method     string    `yaml:"method"`
	Step       float64   `yaml:"step"`
	Iterations int       `yaml:"iterations"`
	Params     []float64 `yaml:"params"`
	Initial    []float64 `yaml:"initial"`
}

func DefaultConfig() *Config {
	return &Config{
		Family:     "lorenz",
		Method:     "runge-kutta",
		Step:       DefaultStep,
		Iterations: DefaultIterations,
		Params:     []float64{10, 28, 8.0 / 3.0},
		Initial:    []float64{1, 1, 1},
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

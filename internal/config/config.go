// Package config loads and saves frame parameter files in YAML form.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/isostatics/isoframe/internal/frame"
)

// Geometry of the original worked problem, used as defaults.
const (
	DefaultLab = 1.0
	DefaultLbc = 3.0
	DefaultHcd = 1.0
)

// Config mirrors frame.StructureParameters for parameter files.
type Config struct {
	Ha  float64 `yaml:"ha"`   // horizontal force at A (kN)
	Hd  float64 `yaml:"hd"`   // horizontal force at D (kN)
	Pbc float64 `yaml:"pbc"`  // distributed load over B-C (kN/m)
	Lab float64 `yaml:"l_ab"` // span A-B (m)
	Lbc float64 `yaml:"l_bc"` // span B-C (m)
	Hcd float64 `yaml:"h_cd"` // offset height C-D (m)
}

func Default() *Config {
	return &Config{
		Lab: DefaultLab,
		Lbc: DefaultLbc,
		Hcd: DefaultHcd,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// Parameters converts the config into solver input.
func (c *Config) Parameters() frame.StructureParameters {
	return frame.StructureParameters{
		Ha:  c.Ha,
		Hd:  c.Hd,
		Pbc: c.Pbc,
		Lab: c.Lab,
		Lbc: c.Lbc,
		Hcd: c.Hcd,
	}
}

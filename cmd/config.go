package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/smasonuk/vecmath"
	"gopkg.in/yaml.v3"
)

// Config describes the arc shown by the viewer. Vectors are written "x,y,z".
type Config struct {
	From  vecmath.Vector3 `yaml:"from"`
	To    vecmath.Vector3 `yaml:"to"`
	Steps int             `yaml:"steps"`
	Speed float64         `yaml:"speed"`
	Scale float64         `yaml:"scale"`
}

func DefaultConfig() Config {
	return Config{
		From:  vecmath.UnitX,
		To:    vecmath.UnitZ,
		Steps: 32,
		Speed: 0.01,
		Scale: 150,
	}
}

// LoadConfig decodes YAML from r over the defaults. Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Steps < 1 {
		return Config{}, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("scale must be positive, got %v", cfg.Scale)
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config file %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return cfg, nil
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWorldWidth     = 800.0
	DefaultWorldHeight    = 600.0
	DefaultGridResolution = 25
	DefaultG              = 100.0
	DefaultRestitution    = 0.8
	DefaultDt             = 0.016
	DefaultDuration       = 30.0
)

// BodyConfig describes one body of a scenario. When Orbit is set the
// configured velocity is ignored and a circular-orbit velocity around the
// scenario's heaviest body is derived at setup time.
type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Orbit  bool    `yaml:"orbit"`
}

type Config struct {
	WorldWidth     float64      `yaml:"world_width"`
	WorldHeight    float64      `yaml:"world_height"`
	GridResolution int          `yaml:"grid_resolution"`
	G              float64      `yaml:"g"`
	Restitution    float64      `yaml:"restitution"`
	Dt             float64      `yaml:"dt"`
	Duration       float64      `yaml:"duration"`
	Bodies         []BodyConfig `yaml:"bodies"`
}

// DefaultConfig mirrors the built-in demonstration scenario: a heavy
// central body with two lighter bodies placed on circular orbits.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:     DefaultWorldWidth,
		WorldHeight:    DefaultWorldHeight,
		GridResolution: DefaultGridResolution,
		G:              DefaultG,
		Restitution:    DefaultRestitution,
		Dt:             DefaultDt,
		Duration:       DefaultDuration,
		Bodies: []BodyConfig{
			{X: 400, Y: 300, Mass: 1000, Radius: 15},
			{X: 200, Y: 180, Mass: 200, Radius: 8, Orbit: true},
			{X: 600, Y: 420, Mass: 300, Radius: 10, Orbit: true},
		},
	}
}

// Load reads a yaml config file on top of the defaults, then sanitizes it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Sanitize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sanitize replaces non-positive numeric settings with their defaults.
// Configuration errors are repaired here, once, rather than surfacing as
// NaN somewhere downstream.
func (c *Config) Sanitize() {
	if c.WorldWidth <= 0 {
		c.WorldWidth = DefaultWorldWidth
	}
	if c.WorldHeight <= 0 {
		c.WorldHeight = DefaultWorldHeight
	}
	if c.GridResolution <= 0 {
		c.GridResolution = DefaultGridResolution
	}
	if c.G <= 0 {
		c.G = DefaultG
	}
	if c.Restitution <= 0 || c.Restitution >= 1 {
		c.Restitution = DefaultRestitution
	}
	if c.Dt <= 0 {
		c.Dt = DefaultDt
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/body"
)

const (
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultTitle       = "orrery"
	DefaultFPS         = 60
	DefaultStarCount   = 2000
	DefaultStarSpread  = 400.0
	DefaultCamDistance = 60.0
	DefaultFovY        = 45.0
)

type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Camera     CameraConfig  `yaml:"camera"`
	Bloom      BloomConfig   `yaml:"bloom"`
	Stars      StarConfig    `yaml:"stars"`
	Focus      string        `yaml:"focus,omitempty"` // body focused at startup
	ShowOrbits bool          `yaml:"show_orbits"`
	Bodies     []body.Planet `yaml:"bodies,omitempty"` // overrides the default table
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type CameraConfig struct {
	Distance float64 `yaml:"distance"` // initial orbit radius
	FovY     float64 `yaml:"fovy"`     // vertical field of view, degrees
}

type BloomConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Strength  float64 `yaml:"strength"`
	Radius    float64 `yaml:"radius"`
	Threshold float64 `yaml:"threshold"`
}

type StarConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Camera: CameraConfig{
			Distance: DefaultCamDistance,
			FovY:     DefaultFovY,
		},
		Bloom: BloomConfig{
			Enabled:   true,
			Strength:  1.4,
			Radius:    2.0,
			Threshold: 0.55,
		},
		Stars: StarConfig{
			Count:  DefaultStarCount,
			Spread: DefaultStarSpread,
		},
		ShowOrbits: true,
	}
}

// Load reads a yaml scene config, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Planets returns the effective parameter table: the override from the
// config file when present, the default system otherwise.
func (c *Config) Planets() []body.Planet {
	if len(c.Bodies) > 0 {
		return c.Bodies
	}
	return body.DefaultSystem()
}

// Validate checks window dimensions and the body table.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window dimensions must be positive")
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("config: fovy must be in (0, 180)")
	}
	if err := body.Validate(c.Planets()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Focus != "" {
		if _, ok := body.Find(c.Planets(), c.Focus); !ok {
			return fmt.Errorf("config: startup focus %q not in body table", c.Focus)
		}
	}
	return nil
}

package config

import (
	"sort"

	"github.com/san-kum/orrery/internal/body"
)

// Presets are named scene configurations selectable from the CLI.
var Presets = map[string]func() *Config{
	// The complete default system.
	"full": DefaultConfig,

	// Terrestrial planets only, camera pulled in close.
	"inner": func() *Config {
		cfg := DefaultConfig()
		full := body.DefaultSystem()
		cfg.Bodies = full[:4]
		cfg.Camera.Distance = 30
		return cfg
	},

	// Gas and ice giants with their moon trains.
	"giants": func() *Config {
		cfg := DefaultConfig()
		full := body.DefaultSystem()
		cfg.Bodies = full[4:]
		cfg.Camera.Distance = 80
		return cfg
	},

	// Start already focused on Earth with bloom turned up.
	"chase": func() *Config {
		cfg := DefaultConfig()
		cfg.Focus = "Earth"
		cfg.Bloom.Strength = 2.0
		return cfg
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns all preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package body

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit color triple used for planet materials.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Moon describes a satellite orbiting its parent planet.
type Moon struct {
	Name     string  `yaml:"name"`
	Radius   float64 `yaml:"radius"`
	Distance float64 `yaml:"distance"`
	Rate     float64 `yaml:"rate"` // radians per second, never time-scaled
}

// Planet is one row of the scene parameter table. Immutable after
// construction; the scene graph is built from it once at startup.
type Planet struct {
	Name     string  `yaml:"name"`
	Radius   float64 `yaml:"radius"`
	Color    RGB     `yaml:"color"`
	Distance float64 `yaml:"distance"` // orbital distance from the sun
	Rate     float64 `yaml:"rate"`     // orbital angular speed, radians per second
	Spin     float64 `yaml:"spin"`     // axial spin, radians per second
	Moons    []Moon  `yaml:"moons,omitempty"`
}

// DefaultSystem returns the canonical eight-planet table with major moons.
// Distances and radii are display units, not astronomical ones.
func DefaultSystem() []Planet {
	return []Planet{
		{Name: "Mercury", Radius: 0.38, Color: RGB{151, 151, 159}, Distance: 6, Rate: 0.48, Spin: 0.8},
		{Name: "Venus", Radius: 0.95, Color: RGB{226, 196, 132}, Distance: 9, Rate: 0.35, Spin: 0.8},
		{Name: "Earth", Radius: 1.0, Color: RGB{88, 134, 207}, Distance: 13, Rate: 0.30, Spin: 0.8,
			Moons: []Moon{{Name: "Moon", Radius: 0.27, Distance: 2.0, Rate: 1.6}}},
		{Name: "Mars", Radius: 0.53, Color: RGB{198, 106, 61}, Distance: 17, Rate: 0.24, Spin: 0.8,
			Moons: []Moon{
				{Name: "Phobos", Radius: 0.12, Distance: 1.2, Rate: 2.4},
				{Name: "Deimos", Radius: 0.10, Distance: 1.8, Rate: 1.8},
			}},
		{Name: "Jupiter", Radius: 2.6, Color: RGB{211, 178, 140}, Distance: 24, Rate: 0.13, Spin: 1.4,
			Moons: []Moon{
				{Name: "Io", Radius: 0.25, Distance: 3.6, Rate: 2.2},
				{Name: "Europa", Radius: 0.22, Distance: 4.4, Rate: 1.7},
				{Name: "Ganymede", Radius: 0.36, Distance: 5.3, Rate: 1.3},
				{Name: "Callisto", Radius: 0.33, Distance: 6.4, Rate: 0.9},
			}},
		{Name: "Saturn", Radius: 2.2, Color: RGB{222, 205, 164}, Distance: 31, Rate: 0.10, Spin: 1.3,
			Moons: []Moon{{Name: "Titan", Radius: 0.35, Distance: 4.2, Rate: 1.1}}},
		{Name: "Uranus", Radius: 1.6, Color: RGB{170, 219, 227}, Distance: 38, Rate: 0.07, Spin: 1.0},
		{Name: "Neptune", Radius: 1.5, Color: RGB{93, 125, 224}, Distance: 44, Rate: 0.05, Spin: 1.0,
			Moons: []Moon{{Name: "Triton", Radius: 0.18, Distance: 2.6, Rate: 1.4}}},
	}
}

// Find returns the planet with the given name (case-insensitive).
func Find(planets []Planet, name string) (Planet, bool) {
	for _, p := range planets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Planet{}, false
}

// Validate checks a parameter table for values the scene builder cannot
// accept: empty or duplicate names, non-positive radii or distances.
func Validate(planets []Planet) error {
	if len(planets) == 0 {
		return fmt.Errorf("body: empty planet table")
	}
	seen := make(map[string]bool, len(planets))
	for _, p := range planets {
		if p.Name == "" {
			return fmt.Errorf("body: planet with empty name")
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return fmt.Errorf("body: duplicate planet %q", p.Name)
		}
		seen[key] = true
		if p.Radius <= 0 {
			return fmt.Errorf("body: planet %q: radius must be positive", p.Name)
		}
		if p.Distance <= 0 {
			return fmt.Errorf("body: planet %q: distance must be positive", p.Name)
		}
		for _, m := range p.Moons {
			if m.Name == "" {
				return fmt.Errorf("body: planet %q: moon with empty name", p.Name)
			}
			if m.Radius <= 0 {
				return fmt.Errorf("body: moon %q of %q: radius must be positive", m.Name, p.Name)
			}
			if m.Distance <= p.Radius {
				return fmt.Errorf("body: moon %q of %q: distance must clear the planet surface", m.Name, p.Name)
			}
		}
	}
	return nil
}

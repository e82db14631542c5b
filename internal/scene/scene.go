package scene

import (
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/body"
)

// Animation constants shared by all frontends.
const (
	// TimeScaleSmoothing is the fixed per-frame relaxation factor for the
	// global time scale.
	TimeScaleSmoothing = 0.05

	// TimeScaleFree and TimeScaleFocused are the relaxation targets in the
	// free and focused states.
	TimeScaleFree    = 1.0
	TimeScaleFocused = 0.1

	// StarRate is the slow star-field rotation, scaled by the time scale.
	StarRate = 0.01

	// SunRadius is the display radius of the central body.
	SunRadius = 3.5
)

// FocusOffset is the fixed camera displacement applied when a body
// gains focus.
var FocusOffset = Vec3{5, 3, 5}

// Scene owns the node graph and the per-frame animation state.
type Scene struct {
	Graph   *Graph
	Planets []body.Planet

	sun     Handle
	stars   Handle
	planets []Handle // body nodes, index-aligned with Planets
	byName  map[string]Handle

	timeScale float64
	focus     Handle
	elapsed   float64
}

// Build constructs the full hierarchy for the given parameter table:
// sun and star pivot under the root, one orbit group per planet, the
// planet body under its group, and a moon orbit group per moon under
// the planet body. Construction is infallible for a validated table.
func Build(planets []body.Planet) *Scene {
	g := NewGraph()
	s := &Scene{
		Graph:     g,
		Planets:   planets,
		timeScale: TimeScaleFree,
		focus:     None,
		byName:    make(map[string]Handle, len(planets)),
	}

	s.sun = g.Add(g.Root(), Node{
		Name:   "Sun",
		Kind:   KindBody,
		Radius: SunRadius,
		Color:  [3]uint8{255, 204, 51},
	})
	s.stars = g.Add(g.Root(), Node{
		Name:   "stars",
		Kind:   KindStars,
		Rate:   StarRate,
		Scaled: true,
	})

	for _, p := range planets {
		orbit := g.Add(g.Root(), Node{
			Name:   p.Name + "-orbit",
			Kind:   KindOrbit,
			Rate:   p.Rate,
			Scaled: true,
		})
		planet := g.Add(orbit, Node{
			Name:     p.Name,
			Kind:     KindBody,
			Offset:   Vec3{X: p.Distance},
			Rate:     p.Spin,
			Radius:   p.Radius,
			Color:    [3]uint8{p.Color.R, p.Color.G, p.Color.B},
			Pickable: true,
		})
		s.planets = append(s.planets, planet)
		s.byName[strings.ToLower(p.Name)] = planet

		for _, m := range p.Moons {
			moonOrbit := g.Add(planet, Node{
				Name: m.Name + "-orbit",
				Kind: KindOrbit,
				Rate: m.Rate, // moons ignore the time scale
			})
			g.Add(moonOrbit, Node{
				Name:   m.Name,
				Kind:   KindBody,
				Offset: Vec3{X: m.Distance},
				Radius: m.Radius,
				Color:  [3]uint8{190, 190, 190},
			})
		}
	}

	return s
}

// Step advances the scene by one frame of dt seconds: relax the time
// scale toward its state target, then accumulate every node's rotation.
// Orbit rates marked Scaled are multiplied by the time scale; spins and
// moon orbits are not.
func (s *Scene) Step(dt float64) {
	target := TimeScaleFree
	if s.focus != None {
		target = TimeScaleFocused
	}
	s.timeScale += (target - s.timeScale) * TimeScaleSmoothing

	for i := range s.Graph.nodes {
		n := &s.Graph.nodes[i]
		if n.Rate == 0 {
			continue
		}
		rate := n.Rate
		if n.Scaled {
			rate *= s.timeScale
		}
		n.Rotation = math.Mod(n.Rotation+rate*dt, 2*math.Pi)
	}
	s.elapsed += dt
}

// TimeScale returns the current smoothed multiplier.
func (s *Scene) TimeScale() float64 { return s.timeScale }

// Elapsed returns total simulated wall time fed into Step.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Sun and Stars expose the fixed root-level nodes.
func (s *Scene) Sun() Handle   { return s.sun }
func (s *Scene) Stars() Handle { return s.stars }

// PlanetHandles returns the planet body nodes, index-aligned with Planets.
func (s *Scene) PlanetHandles() []Handle { return s.planets }

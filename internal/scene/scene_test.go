package scene

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/body"
)

func testPlanets() []body.Planet {
	return []body.Planet{
		{Name: "Earth", Radius: 1, Color: body.RGB{R: 88, G: 134, B: 207}, Distance: 13, Rate: 0.3, Spin: 0.8,
			Moons: []body.Moon{{Name: "Moon", Radius: 0.27, Distance: 2, Rate: 1.6}}},
		{Name: "Mars", Radius: 0.53, Color: body.RGB{R: 198, G: 106, B: 61}, Distance: 17, Rate: 0.24, Spin: 0.8},
	}
}

func TestBuildHierarchy(t *testing.T) {
	s := Build(testPlanets())
	g := s.Graph

	// root + sun + stars + 2 orbit groups + 2 planets + 1 moon orbit + 1 moon
	if g.Len() != 9 {
		t.Fatalf("expected 9 nodes, got %d", g.Len())
	}

	handles := s.PlanetHandles()
	if len(handles) != 2 {
		t.Fatalf("expected 2 planet nodes, got %d", len(handles))
	}

	for i, h := range handles {
		n := g.Node(h)
		if !n.Pickable {
			t.Errorf("planet %s should be pickable", n.Name)
		}
		orbit := g.Node(n.Parent)
		if orbit.Kind != KindOrbit {
			t.Errorf("planet %s parent should be an orbit group, got kind %d", n.Name, orbit.Kind)
		}
		if orbit.Parent != g.Root() {
			t.Errorf("planet %s orbit group should hang off the root", n.Name)
		}
		if !orbit.Scaled {
			t.Errorf("planet %s orbit rate should be time-scaled", n.Name)
		}
		if n.Name != s.Planets[i].Name {
			t.Errorf("handle order mismatch: %s vs %s", n.Name, s.Planets[i].Name)
		}
	}

	// Moon orbit group must be a child of the planet body, not the root.
	earth := handles[0]
	if len(g.Node(earth).Children) != 1 {
		t.Fatalf("expected 1 moon orbit group under Earth, got %d", len(g.Node(earth).Children))
	}
	moonOrbit := g.Node(g.Node(earth).Children[0])
	if moonOrbit.Kind != KindOrbit {
		t.Errorf("moon pivot should be an orbit group")
	}
	if moonOrbit.Scaled {
		t.Error("moon orbit rate must not be time-scaled")
	}
}

func TestWorldPositionComposesOrbits(t *testing.T) {
	s := Build(testPlanets())
	g := s.Graph

	earth := s.PlanetHandles()[0]
	orbit := g.Node(earth).Parent

	// Quarter revolution: {13,0,0} rotated by pi/2 around +Y lands on -Z.
	g.Node(orbit).Rotation = math.Pi / 2
	pos := g.WorldPosition(earth)
	if math.Abs(pos.X) > 1e-9 || math.Abs(pos.Z+13) > 1e-9 {
		t.Errorf("expected (0,0,-13), got (%v,%v,%v)", pos.X, pos.Y, pos.Z)
	}

	// Moon world position includes planet offset and planet spin.
	moonOrbit := g.Node(earth).Children[0]
	moon := g.Node(moonOrbit).Children[0]
	g.Node(orbit).Rotation = 0
	pos = g.WorldPosition(moon)
	want := Vec3{13 + 2, 0, 0}
	if pos.Sub(want).Length() > 1e-9 {
		t.Errorf("expected %v, got %v", want, pos)
	}
}

func TestStepAdvancesOrbitsByScaledRate(t *testing.T) {
	s := Build(testPlanets())
	g := s.Graph

	earth := s.PlanetHandles()[0]
	orbit := g.Node(earth).Parent

	s.Step(1.0)
	// time scale stays 1.0 in the free state, so one second advances the
	// orbit by exactly its rate
	got := g.Node(orbit).Rotation
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("expected orbit angle 0.3, got %v", got)
	}
}

func TestTimeScaleRecurrence(t *testing.T) {
	s := Build(testPlanets())

	if s.TimeScale() != 1.0 {
		t.Fatalf("initial time scale should be 1.0, got %v", s.TimeScale())
	}

	if err := s.FocusByName("Earth"); err != nil {
		t.Fatal(err)
	}

	v := 1.0
	for i := 0; i < 200; i++ {
		s.Step(0.016)
		v += (TimeScaleFocused - v) * TimeScaleSmoothing
		if math.Abs(s.TimeScale()-v) > 1e-12 {
			t.Fatalf("frame %d: time scale %v, expected %v", i, s.TimeScale(), v)
		}
		if s.TimeScale() < TimeScaleFocused || s.TimeScale() > TimeScaleFree {
			t.Fatalf("frame %d: time scale %v out of [0.1, 1.0]", i, s.TimeScale())
		}
	}

	// Converged near the focused target, then relaxes back after blur.
	if math.Abs(s.TimeScale()-TimeScaleFocused) > 1e-3 {
		t.Errorf("expected convergence near 0.1, got %v", s.TimeScale())
	}
	s.Blur()
	for i := 0; i < 400; i++ {
		s.Step(0.016)
	}
	if math.Abs(s.TimeScale()-TimeScaleFree) > 1e-3 {
		t.Errorf("expected relaxation back to 1.0, got %v", s.TimeScale())
	}
}

func TestMoonRateIgnoresTimeScale(t *testing.T) {
	s := Build(testPlanets())
	g := s.Graph

	earth := s.PlanetHandles()[0]
	moonOrbit := g.Node(earth).Children[0]

	if err := s.FocusByName("Earth"); err != nil {
		t.Fatal(err)
	}
	// Drive the time scale far from 1.0.
	for i := 0; i < 500; i++ {
		s.Step(0.01)
	}

	before := g.Node(moonOrbit).Rotation
	s.Step(0.01)
	delta := g.Node(moonOrbit).Rotation - before
	if delta < 0 {
		delta += 2 * math.Pi
	}
	// The moon still advances at its full nominal rate.
	if math.Abs(delta-1.6*0.01) > 1e-9 {
		t.Errorf("moon advanced %v, expected nominal %v", delta, 1.6*0.01)
	}
}

func TestFocusTransitions(t *testing.T) {
	s := Build(testPlanets())

	if s.Focused() != None {
		t.Fatal("scene should start free")
	}
	if got := s.LookTarget(); got != (Vec3{}) {
		t.Errorf("free look target should be origin, got %v", got)
	}

	if err := s.FocusByName("Earth"); err != nil {
		t.Fatal(err)
	}
	if s.FocusedName() != "Earth" {
		t.Errorf("expected focus Earth, got %q", s.FocusedName())
	}

	earth := s.PlanetHandles()[0]
	want := s.Graph.WorldPosition(earth).Add(FocusOffset)
	if got := s.CameraJump(); got.Sub(want).Length() > 1e-9 {
		t.Errorf("camera jump %v, expected %v", got, want)
	}

	// Look target keeps tracking the body as it orbits.
	for i := 0; i < 50; i++ {
		s.Step(0.1)
		want := s.Graph.WorldPosition(earth)
		if got := s.LookTarget(); got.Sub(want).Length() > 1e-9 {
			t.Fatalf("frame %d: look target %v, expected %v", i, got, want)
		}
	}

	s.Blur()
	if s.Focused() != None || s.LookTarget() != (Vec3{}) {
		t.Error("blur should clear selection and reset the look target")
	}
}

func TestFocusByNameIsCaseInsensitive(t *testing.T) {
	s := Build(testPlanets())

	// Config validation resolves names with body.Find, which ignores
	// case; FocusByName must accept the same spellings.
	for _, name := range []string{"earth", "EARTH", "Earth"} {
		s.Blur()
		if err := s.FocusByName(name); err != nil {
			t.Errorf("FocusByName(%q): %v", name, err)
		}
		if s.FocusedName() != "Earth" {
			t.Errorf("FocusByName(%q): focused %q", name, s.FocusedName())
		}
	}
}

func TestFocusErrors(t *testing.T) {
	s := Build(testPlanets())

	if err := s.FocusByName("Pluto"); err != ErrUnknownBody {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
	if err := s.Focus(s.Sun()); err != ErrNotPickable {
		t.Errorf("focusing the sun should fail, got %v", err)
	}
	if err := s.Focus(Handle(999)); err != ErrNotPickable {
		t.Errorf("expected ErrNotPickable for invalid handle, got %v", err)
	}
	if s.Focused() != None {
		t.Error("failed focus attempts must not change the selection")
	}
}

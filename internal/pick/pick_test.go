package pick

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/scene"
)

func TestNearestPicksClosestSphere(t *testing.T) {
	ray := Ray{Origin: scene.Vec3{Z: 10}, Dir: scene.Vec3{Z: -1}}
	targets := []Target{
		{Handle: 1, Center: scene.Vec3{Z: -20}, Radius: 1},
		{Handle: 2, Center: scene.Vec3{Z: 0}, Radius: 1}, // closer along the ray
		{Handle: 3, Center: scene.Vec3{X: 50}, Radius: 1},
	}

	hit, ok := Nearest(ray, targets)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Handle != 2 {
		t.Errorf("expected nearest handle 2, got %d", hit.Handle)
	}
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("expected distance 9 (surface of the near sphere), got %v", hit.Distance)
	}
}

func TestNearestMiss(t *testing.T) {
	ray := Ray{Origin: scene.Vec3{}, Dir: scene.Vec3{Y: 1}}
	targets := []Target{{Handle: 1, Center: scene.Vec3{X: 100}, Radius: 1}}

	if _, ok := Nearest(ray, targets); ok {
		t.Error("expected a miss")
	}
	if _, ok := Nearest(ray, nil); ok {
		t.Error("empty target set should miss")
	}
}

func TestNearestIgnoresSpheresBehindOrigin(t *testing.T) {
	ray := Ray{Origin: scene.Vec3{}, Dir: scene.Vec3{Z: -1}}
	targets := []Target{{Handle: 1, Center: scene.Vec3{Z: 10}, Radius: 1}}

	if _, ok := Nearest(ray, targets); ok {
		t.Error("sphere behind the ray origin must not be hit")
	}
}

func TestScreenRayCenterPointsForward(t *testing.T) {
	pos := scene.Vec3{Z: 40}
	ray := ScreenRay(pos, scene.Vec3{}, scene.Vec3{Y: 1}, math.Pi/4, 16.0/9.0, 0, 0)

	if ray.Origin != pos {
		t.Errorf("ray origin should be the camera position")
	}
	want := scene.Vec3{Z: -1}
	if ray.Dir.Sub(want).Length() > 1e-9 {
		t.Errorf("center ray should point at the look target, got %v", ray.Dir)
	}
}

func TestScreenRayEdgeMatchesFov(t *testing.T) {
	fovY := math.Pi / 3
	ray := ScreenRay(scene.Vec3{Z: 10}, scene.Vec3{}, scene.Vec3{Y: 1}, fovY, 1.0, 0, 1)

	// The top-edge ray makes an angle of fovY/2 with the forward axis.
	forward := scene.Vec3{Z: -1}
	got := math.Acos(ray.Dir.Dot(forward))
	if math.Abs(got-fovY/2) > 1e-9 {
		t.Errorf("top-edge ray angle %v, expected %v", got, fovY/2)
	}
}

func TestPickEarthEndToEnd(t *testing.T) {
	s := scene.Build(body.DefaultSystem())

	earth := s.PlanetHandles()[2] // Mercury, Venus, Earth, ...
	if s.Graph.Node(earth).Name != "Earth" {
		t.Fatalf("expected handle 2 to be Earth, got %s", s.Graph.Node(earth).Name)
	}

	// Aim straight down at Earth's current world position.
	center := s.Graph.WorldPosition(earth)
	ray := Ray{Origin: center.Add(scene.Vec3{Y: 30}), Dir: scene.Vec3{Y: -1}}

	hit, ok := Nearest(ray, Targets(s))
	if !ok {
		t.Fatal("expected to hit Earth")
	}
	if hit.Handle != earth {
		t.Fatalf("expected Earth, got %s", s.Graph.Node(hit.Handle).Name)
	}

	// Feeding the hit into the focus controller completes the scenario.
	if err := s.Focus(hit.Handle); err != nil {
		t.Fatal(err)
	}
	want := center.Add(scene.FocusOffset)
	if got := s.CameraJump(); got.Sub(want).Length() > 1e-9 {
		t.Errorf("camera jump %v, expected world+offset %v", got, want)
	}
}

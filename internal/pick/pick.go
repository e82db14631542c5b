// Package pick casts rays from screen coordinates and intersects them
// with the scene's pickable bodies. It is a pure query layer: the GUI
// frontend converts raylib's mouse ray into a [Ray] and routes it
// through [Nearest], and [ScreenRay] builds the same ray headless so
// picking is testable without a window.
package pick

import (
	"math"

	"github.com/san-kum/orrery/internal/scene"
)

// Ray is an origin plus a normalized direction.
type Ray struct {
	Origin, Dir scene.Vec3
}

// Target is one pickable sphere: a body handle with its current world
// position and radius.
type Target struct {
	Handle scene.Handle
	Center scene.Vec3
	Radius float64
}

// Hit is the result of a successful pick.
type Hit struct {
	Handle   scene.Handle
	Distance float64
}

// Targets snapshots the scene's pickable bodies at their current world
// transforms.
func Targets(s *scene.Scene) []Target {
	handles := s.Graph.Pickables()
	out := make([]Target, 0, len(handles))
	for _, h := range handles {
		n := s.Graph.Node(h)
		out = append(out, Target{
			Handle: h,
			Center: s.Graph.WorldPosition(h),
			Radius: n.Radius,
		})
	}
	return out
}

// Nearest returns the closest target intersected by the ray, or ok=false
// when the ray misses everything. Intersections behind the ray origin do
// not count.
func Nearest(r Ray, targets []Target) (Hit, bool) {
	best := Hit{Handle: scene.None, Distance: math.Inf(1)}
	found := false
	for _, t := range targets {
		d, hit := intersectSphere(r, t.Center, t.Radius)
		if hit && d < best.Distance {
			best = Hit{Handle: t.Handle, Distance: d}
			found = true
		}
	}
	return best, found
}

// intersectSphere solves |o + t*d - c|^2 = r^2 and returns the smallest
// non-negative t.
func intersectSphere(r Ray, center scene.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq // origin inside the sphere
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ScreenRay builds the pick ray through a screen point given the camera
// pose. ndcX and ndcY are normalized device coordinates in [-1, 1] with
// +Y up; fovY is the vertical field of view in radians.
func ScreenRay(pos, target, up scene.Vec3, fovY, aspect, ndcX, ndcY float64) Ray {
	forward := target.Sub(pos).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	halfH := math.Tan(fovY / 2)
	halfW := halfH * aspect

	dir := forward.
		Add(right.Scale(ndcX * halfW)).
		Add(trueUp.Scale(ndcY * halfH)).
		Normalize()
	return Ray{Origin: pos, Dir: dir}
}

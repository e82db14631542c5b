package scene

import "strings"

// Focus state machine: the scene is either free (no selection) or focused
// on exactly one pickable body. Focusing drives the time-scale target and
// the camera look target; the camera jump itself belongs to the frontend.

// Focus selects a pickable body. Selecting an invalid or non-pickable
// handle returns ErrNotPickable and leaves the state unchanged.
func (s *Scene) Focus(h Handle) error {
	if !s.Graph.Valid(h) || !s.Graph.Node(h).Pickable {
		return ErrNotPickable
	}
	s.focus = h
	return nil
}

// FocusByName selects a planet by table name. Matching is
// case-insensitive, like body.Find, so config-validated names resolve.
func (s *Scene) FocusByName(name string) error {
	h, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return ErrUnknownBody
	}
	return s.Focus(h)
}

// Blur clears the selection, returning the scene to the free state.
func (s *Scene) Blur() { s.focus = None }

// Focused returns the selected body handle, or None.
func (s *Scene) Focused() Handle { return s.focus }

// FocusedName returns the selected body's name, or "" when free.
func (s *Scene) FocusedName() string {
	if s.focus == None {
		return ""
	}
	return s.Graph.Node(s.focus).Name
}

// LookTarget is the point the orbit camera should track this frame: the
// focused body's current world position, or the origin when free.
func (s *Scene) LookTarget() Vec3 {
	if s.focus == None {
		return Vec3{}
	}
	return s.Graph.WorldPosition(s.focus)
}

// CameraJump is the discontinuous camera position applied on the
// free-to-focused transition: the body's world position plus FocusOffset.
func (s *Scene) CameraJump() Vec3 {
	return s.LookTarget().Add(FocusOffset)
}

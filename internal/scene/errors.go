package scene

import "errors"

var (
	// ErrUnknownBody indicates a name with no planet node in the graph.
	ErrUnknownBody = errors.New("scene: unknown body")

	// ErrNotPickable indicates a focus attempt on a handle that is not a
	// pickable body.
	ErrNotPickable = errors.New("scene: node is not pickable")
)

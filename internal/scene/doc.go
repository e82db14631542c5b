// Package scene holds the renderer-independent core of the orrery.
//
// The package builds the node hierarchy from a planet parameter table and
// advances it one frame at a time:
//
//   - [Graph]: arena of transform nodes addressed by integer handles
//   - [Scene]: graph plus per-frame animation and focus state
//   - [Scene.Step]: pure per-frame update (orbits, spins, time scale)
//
// The hierarchy is strictly tree-shaped: the root owns one orbit group per
// planet, each orbit group owns the planet node, and moon orbit groups hang
// off the planet node so moons inherit the planet's world transform.
//
// # Time scale
//
// A single scalar in [0.1, 1.0] multiplies planetary orbital rates. It
// relaxes toward 0.1 while a body is focused and toward 1.0 otherwise,
// by a fixed-rate exponential step once per frame. Moon orbits and axial
// spins run at their nominal rates regardless of the time scale.
//
// # Thread safety
//
// Scene is not safe for concurrent use. Frontends drive it from a single
// loop: the render tick is the only writer of transform state.
package scene

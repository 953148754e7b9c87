// Package demo is a small ebiten-driven consumer of the ecs package. It
// exists to exercise the registry the way a real game loop would: acquire
// entities once at startup, assign components, then walk a view every
// frame instead of touching the registry's internals directly.
package demo

import "muscle-dreamer/internal/core/ecs/sstring"

// Transform holds an entity's position and rotation, mirroring the fields
// a 2D game loop actually reads every frame.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Sprite carries the minimal per-entity rendering data Draw needs: a
// label (stood in for a texture handle, since the demo ships no assets)
// and a fill color. Label uses the small-string-optimised container since
// every label in this demo is short enough to stay inline.
type Sprite struct {
	Label         sstring.String
	R, G, B, A    uint8
	Width, Height float64
}

// Velocity drives Transform integration in Update. Entities without one
// are treated as static and simply drawn in place.
type Velocity struct {
	DX, DY float64
}

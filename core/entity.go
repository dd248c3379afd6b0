package core

import "github.com/lixenwraith/dodge/vmath"

// Entity is a unique identifier for an entity within a World
// Zero is never issued and doubles as "no entity"
type Entity uint64

// Transform places an entity in world space
type Transform struct {
	Position vmath.Vec2
	Rotation float64 // Radians, counter-clockwise from +X
	Scale    vmath.Vec2
}

// NewTransform returns a transform at (x, y) with unit scale
func NewTransform(x, y, rotation float64) Transform {
	return Transform{
		Position: vmath.Vec2{X: x, Y: y},
		Rotation: rotation,
		Scale:    vmath.Vec2{X: 1, Y: 1},
	}
}

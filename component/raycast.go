package component

import (
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/vmath"
)

// RaySpec is a ray in entity-local space, rotated and translated by the owner's transform on evaluation
type RaySpec struct {
	Offset    vmath.Vec2 // Origin relative to entity position
	Direction vmath.Vec2 // Unit vector, local +X is the facing direction
	MaxLength float64
	Mask      core.Layer // Only colliders on these layers can be hit
}

// RayCastComponent holds named rays evaluated on demand
type RayCastComponent struct {
	Rays map[string]RaySpec
}

// NewRayCast builds a component from name/spec pairs
func NewRayCast(rays map[string]RaySpec) RayCastComponent {
	return RayCastComponent{Rays: rays}
}

package component

import "github.com/lixenwraith/dodge/vmath"

// BodyKind selects how the integrator treats a body
type BodyKind uint8

const (
	// BodyKinematic moves by its velocity every fixed step
	BodyKinematic BodyKind = iota
	// BodyStatic never moves
	BodyStatic
)

// Friction coefficients, carried for consumers, not applied by the integrator
type Friction struct {
	Static  float64
	Dynamic float64
}

// RigidBodyComponent holds motion state for the integrator
type RigidBodyComponent struct {
	Kind            BodyKind
	Velocity        vmath.Vec2 // World units per second
	AngularVelocity float64    // Radians per second, informational, rotation is driven by AI
	Friction        Friction
	Restitution     float64 // Velocity reflection factor used by bouncing projectiles
}

// IsKinematic reports whether the body integrates its velocity
func (b *RigidBodyComponent) IsKinematic() bool {
	return b.Kind == BodyKinematic
}

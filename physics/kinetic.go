package physics

import (
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/vmath"
)

// Integrate advances every kinematic body: p = p + v*dt
// Static bodies never move, rotation is left to AI systems; returns the number of bodies moved
func Integrate(w *engine.World, dt float64) int {
	moved := 0
	for e, body := range w.Components.RigidBody.All() {
		if !body.IsKinematic() || !w.IsAlive(e) {
			continue
		}
		if body.Velocity == (vmath.Vec2{}) {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		tr.Position = vmath.V2Add(tr.Position, vmath.V2Scale(body.Velocity, dt))
		w.Components.Transform.SetComponent(e, tr)
		moved++
	}
	return moved
}

// Reflect bounces velocity off a surface with unit normal
// Only the normal component is reversed and scaled by restitution; motion already leaving the surface is kept
func Reflect(vel, normal vmath.Vec2, restitution float64) vmath.Vec2 {
	vn := vmath.V2Dot(vel, normal)
	if vn >= 0 {
		return vel
	}
	return vmath.V2Sub(vel, vmath.V2Scale(normal, (1+restitution)*vn))
}

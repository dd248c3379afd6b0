package physics

import "github.com/lixenwraith/dodge/vmath"

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns the clamped velocity and true if it was clamped
func CapSpeed(vel vmath.Vec2, maxSpeed float64) (vmath.Vec2, bool) {
	if vmath.V2MagSq(vel) <= maxSpeed*maxSpeed {
		return vel, false
	}
	return vmath.V2ClampMagnitude(vel, maxSpeed), true
}

// ClampInside keeps a point at least inset away from the edges of [0,width]x[0,height]
func ClampInside(p vmath.Vec2, width, height, inset float64) vmath.Vec2 {
	return vmath.V2(
		vmath.Clamp(p.X, inset, width-inset),
		vmath.Clamp(p.Y, inset, height-inset),
	)
}

package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Dot returns a.x*b.x + a.y*b.y
func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of the 3D cross product
func V2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// V2Normalize returns unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func V2ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := V2Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// V2Rotate rotates vector counter-clockwise by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2FromAngle returns the unit vector (cos, sin) for angle radians
func V2FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// V2Perp returns vector rotated 90° counter-clockwise
func V2Perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// V2Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func V2Reflect(vel, normal Vec2) Vec2 {
	dot2 := 2 * V2Dot(vel, normal)
	return Vec2{vel.X - dot2*normal.X, vel.Y - dot2*normal.Y}
}

// V2Lerp moves a toward b by fraction t
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

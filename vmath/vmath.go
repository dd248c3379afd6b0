package vmath

import "math"

// TwoPi is a full rotation in radians
const TwoPi = 2 * math.Pi

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// NormalizeAngle wraps angle into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a value just below 0 can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleOf returns the heading of a unit direction in [0, 2π)
// acos resolves x, the sign of y picks the half plane; equivalent to atan2 normalized
func AngleOf(dir Vec2) float64 {
	angle := math.Acos(Clamp(dir.X, -1, 1))
	if dir.Y < 0 {
		angle = TwoPi - angle
	}
	return NormalizeAngle(angle)
}

// ShortestAngleDelta returns the signed rotation from current to target in (-π, π]
func ShortestAngleDelta(current, target float64) float64 {
	diff := NormalizeAngle(target) - NormalizeAngle(current)
	if math.Abs(diff) > math.Pi {
		if diff > 0 {
			diff -= TwoPi
		} else {
			diff += TwoPi
		}
	}
	// -π maps to π so the range stays half-open
	if diff <= -math.Pi {
		diff += TwoPi
	}
	return diff
}

// ApproxEqual reports whether a and b differ by at most eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

package physics

import (
	"math"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/vmath"
)

// Collide runs the exact overlap test for two placed shapes
// The contact normal points from b toward a; touching at a single point counts as overlap
func Collide(a, b WorldShape) (component.Contact, bool) {
	if a.Circle && b.Circle {
		return collideCircles(a, b)
	}
	return collideSAT(a, b)
}

func collideCircles(a, b WorldShape) (component.Contact, bool) {
	d := vmath.V2Sub(a.Center, b.Center)
	sum := a.Radius + b.Radius
	distSq := vmath.V2MagSq(d)
	if distSq > sum*sum {
		return component.Contact{}, false
	}
	dist := math.Sqrt(distSq)
	normal := vmath.V2(1, 0)
	if dist > 0 {
		normal = vmath.V2Scale(d, 1/dist)
	}
	return component.Contact{Normal: normal, Depth: sum - dist}, true
}

// collideSAT handles circle-polygon and polygon-polygon pairs with the separating axis test
// Candidate axes: every polygon edge normal plus, for a circle, the axis to the polygon's closest vertex
func collideSAT(a, b WorldShape) (component.Contact, bool) {
	axes := make([]vmath.Vec2, 0, len(a.Vertices)+len(b.Vertices)+1)
	axes = appendAxes(axes, a, b)
	axes = appendAxes(axes, b, a)

	best := math.Inf(1)
	var bestAxis vmath.Vec2
	for _, axis := range axes {
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		overlap := math.Min(maxA-minB, maxB-minA)
		if overlap < 0 {
			return component.Contact{}, false
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
		}
	}
	if len(axes) == 0 {
		return component.Contact{}, false
	}

	// Orient from b toward a
	if vmath.V2Dot(vmath.V2Sub(a.Center, b.Center), bestAxis) < 0 {
		bestAxis = vmath.V2Scale(bestAxis, -1)
	}
	return component.Contact{Normal: bestAxis, Depth: best}, true
}

func appendAxes(axes []vmath.Vec2, s, other WorldShape) []vmath.Vec2 {
	if s.Circle {
		if other.Circle || len(other.Vertices) == 0 {
			return axes
		}
		closest := other.Vertices[0]
		bestSq := vmath.V2MagSq(vmath.V2Sub(closest, s.Center))
		for _, v := range other.Vertices[1:] {
			if d := vmath.V2MagSq(vmath.V2Sub(v, s.Center)); d < bestSq {
				bestSq, closest = d, v
			}
		}
		if axis := vmath.V2Normalize(vmath.V2Sub(closest, s.Center)); axis != (vmath.Vec2{}) {
			axes = append(axes, axis)
		}
		return axes
	}

	n := len(s.Vertices)
	for i := range n {
		edge := vmath.V2Sub(s.Vertices[(i+1)%n], s.Vertices[i])
		if axis := vmath.V2Normalize(vmath.V2Perp(edge)); axis != (vmath.Vec2{}) {
			axes = append(axes, axis)
		}
	}
	return axes
}

func project(s WorldShape, axis vmath.Vec2) (lo, hi float64) {
	if s.Circle {
		c := vmath.V2Dot(s.Center, axis)
		return c - s.Radius, c + s.Radius
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.Vertices {
		p := vmath.V2Dot(v, axis)
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return lo, hi
}

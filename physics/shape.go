package physics

import (
	"math"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/vmath"
)

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min, Max vmath.Vec2
}

// Overlaps reports whether two boxes intersect, touching edges included
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

// Contains reports whether p lies inside the box
func (a AABB) Contains(p vmath.Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X && p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// WorldShape is a collider placed in world space
// Circles use Center and Radius; polygons use Vertices in counter-clockwise order
type WorldShape struct {
	Circle   bool
	Center   vmath.Vec2
	Radius   float64
	Vertices []vmath.Vec2
	Bounds   AABB
}

// Place transforms a local shape by position, rotation and scale
// Circles scale by the larger axis factor so they stay circles
func Place(s component.Shape, tr core.Transform) WorldShape {
	scale := tr.Scale
	if scale == (vmath.Vec2{}) {
		scale = vmath.V2(1, 1)
	}

	if s.Kind == component.ShapeCircle {
		r := s.Radius * math.Max(math.Abs(scale.X), math.Abs(scale.Y))
		return WorldShape{
			Circle: true,
			Center: tr.Position,
			Radius: r,
			Bounds: AABB{
				Min: vmath.V2(tr.Position.X-r, tr.Position.Y-r),
				Max: vmath.V2(tr.Position.X+r, tr.Position.Y+r),
			},
		}
	}

	local := LocalVertices(s)
	verts := make([]vmath.Vec2, len(local))
	bounds := AABB{
		Min: vmath.V2(math.Inf(1), math.Inf(1)),
		Max: vmath.V2(math.Inf(-1), math.Inf(-1)),
	}
	for i, v := range local {
		v = vmath.V2(v.X*scale.X, v.Y*scale.Y)
		w := vmath.V2Add(tr.Position, vmath.V2Rotate(v, tr.Rotation))
		verts[i] = w
		bounds.Min.X = math.Min(bounds.Min.X, w.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, w.Y)
		bounds.Max.X = math.Max(bounds.Max.X, w.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, w.Y)
	}
	return WorldShape{Center: tr.Position, Vertices: verts, Bounds: bounds}
}

// LocalVertices returns polygon corners around the origin, counter-clockwise
// Regular polygons put vertex i at angle 2πi/n; rectangles are centered
func LocalVertices(s component.Shape) []vmath.Vec2 {
	switch s.Kind {
	case component.ShapePolygon:
		n := s.Sides
		if n < 3 {
			n = 3
		}
		verts := make([]vmath.Vec2, n)
		for i := range n {
			verts[i] = vmath.V2Scale(vmath.V2FromAngle(vmath.TwoPi*float64(i)/float64(n)), s.Radius)
		}
		return verts
	case component.ShapeRectangle:
		hw, hh := s.Width/2, s.Height/2
		return []vmath.Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: hw, Y: hh},
			{X: -hw, Y: hh},
		}
	default:
		return nil
	}
}

// ContainsPoint reports whether p is inside or on the shape
func (s WorldShape) ContainsPoint(p vmath.Vec2) bool {
	if !s.Bounds.Contains(p) {
		return false
	}
	if s.Circle {
		return vmath.V2MagSq(vmath.V2Sub(p, s.Center)) <= s.Radius*s.Radius
	}
	n := len(s.Vertices)
	if n < 3 {
		return false
	}
	sign := 0.0
	for i := range n {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		c := vmath.V2Cross(vmath.V2Sub(b, a), vmath.V2Sub(p, a))
		if c == 0 {
			continue
		}
		if sign == 0 {
			sign = vmath.Sign(c)
		} else if vmath.Sign(c) != sign {
			return false
		}
	}
	return true
}

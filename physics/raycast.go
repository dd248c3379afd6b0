package physics

import (
	"math"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/vmath"
)

// Ray is a world-space query
type Ray struct {
	Origin    vmath.Vec2
	Direction vmath.Vec2 // Normalized on use
	MaxLength float64
	Mask      core.Layer  // Colliders on other layers are ignored entirely
	Ignore    core.Entity // Usually the caster, zero ignores nothing
}

// RayHit is the nearest intersection of a ray
type RayHit struct {
	Entity   core.Entity
	Distance float64
	Point    vmath.Vec2
}

// Intersect returns the distance along the unit direction where the ray first meets s
// A ray starting inside the shape hits at distance zero
func Intersect(origin, dir vmath.Vec2, s WorldShape) (float64, bool) {
	if s.ContainsPoint(origin) {
		return 0, true
	}
	if s.Circle {
		m := vmath.V2Sub(origin, s.Center)
		b := vmath.V2Dot(m, dir)
		c := vmath.V2MagSq(m) - s.Radius*s.Radius
		if c > 0 && b > 0 {
			return 0, false
		}
		disc := b*b - c
		if disc < 0 {
			return 0, false
		}
		t := -b - math.Sqrt(disc)
		return math.Max(t, 0), true
	}

	best := math.Inf(1)
	n := len(s.Vertices)
	for i := range n {
		p := s.Vertices[i]
		edge := vmath.V2Sub(s.Vertices[(i+1)%n], p)
		denom := vmath.V2Cross(dir, edge)
		if math.Abs(denom) < 1e-12 {
			continue
		}
		w := vmath.V2Sub(p, origin)
		t := vmath.V2Cross(w, edge) / denom
		u := vmath.V2Cross(w, dir) / denom
		if t >= 0 && u >= 0 && u <= 1 && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// CastRay returns the nearest collider hit within MaxLength whose layer intersects the mask
// Pending entities are invisible; equal distances resolve to the lower entity id
func CastRay(w *engine.World, ray Ray) (RayHit, bool) {
	dir := vmath.V2Normalize(ray.Direction)
	if dir == (vmath.Vec2{}) || ray.MaxLength < 0 || ray.Mask == 0 {
		return RayHit{}, false
	}

	var hit RayHit
	found := false
	for e, col := range w.Components.Collider.All() {
		if e == ray.Ignore || col.Layer&ray.Mask == 0 || !w.IsAlive(e) {
			continue
		}
		tr, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		t, ok := Intersect(ray.Origin, dir, Place(col.Shape, tr))
		if !ok || t > ray.MaxLength {
			continue
		}
		if !found || t < hit.Distance || (t == hit.Distance && e < hit.Entity) {
			hit = RayHit{Entity: e, Distance: t}
			found = true
		}
	}
	if found {
		hit.Point = vmath.V2Add(ray.Origin, vmath.V2Scale(dir, hit.Distance))
	}
	return hit, found
}

// RayFor places a named ray of entity e in world space
func RayFor(w *engine.World, e core.Entity, name string) (Ray, bool) {
	rc, ok := w.Components.RayCast.GetComponent(e)
	if !ok {
		return Ray{}, false
	}
	spec, ok := rc.Rays[name]
	if !ok {
		return Ray{}, false
	}
	tr, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return Ray{}, false
	}
	return Ray{
		Origin:    vmath.V2Add(tr.Position, vmath.V2Rotate(spec.Offset, tr.Rotation)),
		Direction: vmath.V2Rotate(spec.Direction, tr.Rotation),
		MaxLength: spec.MaxLength,
		Mask:      spec.Mask,
		Ignore:    e,
	}, true
}

// CastNamed evaluates a named ray of entity e
func CastNamed(w *engine.World, e core.Entity, name string) (RayHit, bool) {
	ray, ok := RayFor(w, e, name)
	if !ok {
		return RayHit{}, false
	}
	return CastRay(w, ray)
}

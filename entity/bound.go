package entity

import (
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/vmath"
)

// Face names one side of the playfield
type Face uint8

const (
	FaceTop Face = iota
	FaceRight
	FaceBottom
	FaceLeft
)

// Faces lists every side in spawn order
var Faces = [...]Face{FaceTop, FaceRight, FaceBottom, FaceLeft}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	default:
		return "unknown"
	}
}

// BoundGeometry returns the center and size of the wall just outside face
// Top and bottom walls extend past the corners so the playfield is sealed
func BoundGeometry(cfg *parameter.Config, face Face) (center vmath.Vec2, width, height float64) {
	w, h, t := cfg.World.Width, cfg.World.Height, cfg.World.BoundThickness
	switch face {
	case FaceTop:
		return vmath.V2(w/2, -t/2), w + 2*t, t
	case FaceRight:
		return vmath.V2(w+t/2, h/2), t, h
	case FaceBottom:
		return vmath.V2(w/2, h+t/2), w + 2*t, t
	default:
		return vmath.V2(-t/2, h/2), t, h
	}
}

// CreateBound spawns one static wall
func CreateBound(w *engine.World, face Face) core.Entity {
	center, width, height := BoundGeometry(w.Resources.Config, face)

	eb := w.NewEntity(core.TagBound, core.NewTransform(center.X, center.Y, 0))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Rectangle(width, height),
		Layer: core.LayerBound,
	})
	engine.With(eb, w.Components.RigidBody, component.RigidBodyComponent{
		Kind:        component.BodyStatic,
		Restitution: 1,
	})
	engine.With(eb, w.Components.Appearance, component.AppearanceComponent{
		Glyph:  parameter.BoundGlyph,
		Color:  parameter.BoundColor,
		Filled: true,
	})
	return eb.Build()
}

// CreateBounds seals all four sides
func CreateBounds(w *engine.World) []core.Entity {
	out := make([]core.Entity, 0, len(Faces))
	for _, f := range Faces {
		out = append(out, CreateBound(w, f))
	}
	return out
}

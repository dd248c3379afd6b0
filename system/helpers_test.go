package system

import (
	"testing"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
)

// run starts a throwaway scene around systems and returns a scheduler for stepping it
func run(t *testing.T, w *engine.World, systems ...engine.System) *engine.ClockScheduler {
	t.Helper()
	sc := engine.NewScene(w, "test", nil, systems...)
	sc.Start()
	t.Cleanup(sc.Stop)

	cs := engine.NewClockScheduler(w)
	cs.SetScene(sc)
	return cs
}

func place(w *engine.World, e core.Entity, x, y, rotation float64) {
	w.Components.Transform.SetComponent(e, core.NewTransform(x, y, rotation))
}

func setVelocity(w *engine.World, e core.Entity, x, y float64) {
	body, _ := w.Components.RigidBody.GetComponent(e)
	body.Velocity.X, body.Velocity.Y = x, y
	w.Components.RigidBody.SetComponent(e, body)
}

func addWall(w *engine.World, x, y, width, height float64) core.Entity {
	eb := w.NewEntity(core.TagBound, core.NewTransform(x, y, 0))
	engine.With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Rectangle(width, height),
		Layer: core.LayerBound,
	})
	engine.With(eb, w.Components.RigidBody, component.RigidBodyComponent{Kind: component.BodyStatic, Restitution: 1})
	return eb.Build()
}

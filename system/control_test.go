package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/vmath"
)

func pointer(kind input.PointerKind, x, y float64) input.PointerEvent {
	return input.PointerEvent{Kind: kind, Position: vmath.V2(x, y)}
}

func newControl(t *testing.T) (*engine.World, *input.Hub, *ControlSystem) {
	t.Helper()
	w := engine.NewWorld()
	entity.CreatePlayer(w)
	hub := input.NewHub()
	ctl := NewControlSystem(w, hub).(*ControlSystem)
	run(t, w, ctl)
	return w, hub, ctl
}

func playerPos(t *testing.T, w *engine.World) vmath.Vec2 {
	t.Helper()
	p, ok := w.FirstByTag(core.TagPlayer)
	require.True(t, ok)
	tr, _ := w.Components.Transform.GetComponent(p)
	return tr.Position
}

func TestControlDragScalesAndEases(t *testing.T) {
	w, hub, ctl := newControl(t)

	hub.Dispatch(pointer(input.PointerDown, 100, 100))
	target, ok := ctl.Target()
	require.True(t, ok)
	assert.Equal(t, vmath.V2(400, 300), target)

	hub.Dispatch(pointer(input.PointerMove, 110, 120))
	target, _ = ctl.Target()
	assert.Equal(t, vmath.V2(430, 360), target)

	ctl.Update(1.0 / 60)
	assert.Equal(t, vmath.V2(407.5, 315), playerPos(t, w))
}

func TestControlReanchorsAtEdge(t *testing.T) {
	_, hub, ctl := newControl(t)

	hub.Dispatch(pointer(input.PointerDown, 100, 100))
	hub.Dispatch(pointer(input.PointerMove, 300, 100))
	target, _ := ctl.Target()
	assert.Equal(t, 1000.0, target.X)

	// Pulling back responds from the clamped edge, not from the overshoot
	hub.Dispatch(pointer(input.PointerMove, 290, 100))
	target, _ = ctl.Target()
	assert.Equal(t, 770.0, target.X)
	assert.Equal(t, 300.0, target.Y)
}

func TestControlReleaseKeepsTarget(t *testing.T) {
	w, hub, ctl := newControl(t)

	hub.Dispatch(pointer(input.PointerDown, 0, 0))
	hub.Dispatch(pointer(input.PointerMove, 10, 0))
	hub.Dispatch(pointer(input.PointerUp, 10, 0))
	hub.Dispatch(pointer(input.PointerMove, 50, 50))

	target, _ := ctl.Target()
	assert.Equal(t, vmath.V2(430, 300), target)

	for i := 0; i < 100; i++ {
		ctl.Update(1.0 / 60)
	}
	assert.InDelta(t, 430, playerPos(t, w).X, 1e-6)
}

func TestControlClampsPlayerInside(t *testing.T) {
	w, hub, ctl := newControl(t)

	hub.Dispatch(pointer(input.PointerDown, 100, 100))
	hub.Dispatch(pointer(input.PointerMove, 300, -100))
	for i := 0; i < 200; i++ {
		ctl.Update(1.0 / 60)
	}
	pos := playerPos(t, w)
	assert.Equal(t, 776.0, pos.X)
	assert.Equal(t, 24.0, pos.Y)
}

func TestControlWithoutPressOrPlayer(t *testing.T) {
	w, hub, ctl := newControl(t)

	hub.Dispatch(pointer(input.PointerMove, 10, 10))
	_, ok := ctl.Target()
	assert.False(t, ok)
	ctl.Update(1.0 / 60)
	assert.Equal(t, vmath.V2(400, 300), playerPos(t, w))

	p, _ := w.FirstByTag(core.TagPlayer)
	w.RemoveEntity(p)
	w.Flush()
	assert.NotPanics(t, func() {
		hub.Dispatch(pointer(input.PointerDown, 1, 1))
		ctl.Update(1.0 / 60)
	})
}

func TestControlDisconnectsOnStop(t *testing.T) {
	w := engine.NewWorld()
	hub := input.NewHub()
	ctl := NewControlSystem(w, hub)
	sc := engine.NewScene(w, "test", nil, ctl)

	sc.Start()
	assert.Equal(t, 1, hub.Count(input.PointerMove))
	sc.Stop()
	assert.Zero(t, hub.Count(input.PointerDown))
	assert.Zero(t, hub.Count(input.PointerMove))
	assert.Zero(t, hub.Count(input.PointerUp))
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/event"
)

func TestDifficultyRaisesEveryLiveFoeOnce(t *testing.T) {
	w := engine.NewWorld()
	a := entity.CreateFoe(w, 0)
	b := entity.CreateFoe(w, 1)
	gone := entity.CreateFoe(w, 2)
	w.RemoveEntity(gone)

	sc := engine.NewScene(w, "test", nil, NewDifficultySystem(w))
	sc.Start()

	event.Emit(w.Signals, event.ItemCollected, event.ItemCollectedPayload{Points: 1})
	event.Emit(w.Signals, event.ItemCollected, event.ItemCollectedPayload{Points: 1})

	for _, foe := range []core.Entity{a, b} {
		fs, ok := w.Components.FoeSettings.GetComponent(foe)
		require.True(t, ok)
		assert.InDelta(t, 132, fs.LinearSpeed, 1e-9)
		assert.InDelta(t, 0.27, fs.AngularSpeed, 1e-9)
	}
	fs, _ := w.Components.FoeSettings.GetComponent(gone)
	assert.Equal(t, 120.0, fs.LinearSpeed)
	assert.Equal(t, int64(2), w.Resources.Status.Ints.Get("difficulty.level").Load())
	assert.InDelta(t, 12, w.Resources.Status.Floats.Get("difficulty.linear_bonus").Get(), 1e-9)
	assert.InDelta(t, 0.02, w.Resources.Status.Floats.Get("difficulty.angular_bonus").Get(), 1e-9)

	sc.Stop()
	event.Emit(w.Signals, event.ItemCollected, event.ItemCollectedPayload{Points: 1})
	fs, _ = w.Components.FoeSettings.GetComponent(a)
	assert.InDelta(t, 132, fs.LinearSpeed, 1e-9)
}

func TestSpawnOnePerItem(t *testing.T) {
	w := engine.NewWorld()
	var spawned []core.Entity
	event.Connect(w.Signals, event.EntitySpawned, func(p event.EntitySpawnedPayload) {
		spawned = append(spawned, p.Entity)
	})
	run(t, w, NewSpawnSystem(w))

	for i := 0; i < 20; i++ {
		event.Emit(w.Signals, event.ItemCollected, event.ItemCollectedPayload{Points: 1})
	}

	require.Len(t, spawned, 20)
	assert.Equal(t, 20, w.CountByTag(core.TagCollectible))
	cfg := w.Resources.Config
	for _, e := range spawned {
		tr, _ := w.Components.Transform.GetComponent(e)
		assert.GreaterOrEqual(t, tr.Position.X, cfg.Collectible.Padding)
		assert.LessOrEqual(t, tr.Position.X, cfg.World.Width-cfg.Collectible.Padding)
		assert.GreaterOrEqual(t, tr.Position.Y, cfg.Collectible.Padding)
		assert.LessOrEqual(t, tr.Position.Y, cfg.World.Height-cfg.Collectible.Padding)
	}
}

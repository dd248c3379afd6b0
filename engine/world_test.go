package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/event"
)

func spawnCollectible(w *World, x, y float64) core.Entity {
	eb := w.NewEntity(core.TagCollectible, core.NewTransform(x, y, 0))
	With(eb, w.Components.Collider, component.ColliderComponent{
		Shape: component.Circle(12),
		Layer: core.LayerCollectible,
	})
	return eb.Build()
}

func spawnFoe(w *World, x, y float64) core.Entity {
	eb := w.NewEntity(core.TagFoe, core.NewTransform(x, y, 0))
	With(eb, w.Components.RigidBody, component.RigidBodyComponent{Kind: component.BodyKinematic})
	With(eb, w.Components.FoeSettings, component.FoeSettingsComponent{Radius: 40, LinearSpeed: 120, AngularSpeed: 0.25})
	With(eb, w.Components.FoeState, component.FoeStateComponent{})
	return eb.Build()
}

func TestStoreSparseSet(t *testing.T) {
	s := NewStore[int]()
	for e := core.Entity(1); e <= 4; e++ {
		s.SetComponent(e, int(e)*10)
	}
	s.SetComponent(2, 21)
	assert.Equal(t, 4, s.CountEntities())

	v, ok := s.GetComponent(2)
	require.True(t, ok)
	assert.Equal(t, 21, v)

	s.RemoveEntity(1)
	s.RemoveEntity(1)
	assert.False(t, s.HasEntity(1))
	assert.ElementsMatch(t, []core.Entity{2, 3, 4}, s.GetAllEntities())

	s.RemoveBatch([]core.Entity{3, 99})
	assert.ElementsMatch(t, []core.Entity{2, 4}, s.GetAllEntities())

	sum := 0
	for _, v := range s.All() {
		sum += v
	}
	assert.Equal(t, 61, sum)

	s.ClearAllComponents()
	assert.Equal(t, 0, s.CountEntities())
	_, ok = s.GetComponent(2)
	assert.False(t, ok)
}

func TestStoreAllSkipsAddsDuringIteration(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(1, 1)
	s.SetComponent(2, 2)

	var visited []core.Entity
	for e := range s.All() {
		visited = append(visited, e)
		s.SetComponent(e+10, 0)
	}
	assert.Equal(t, []core.Entity{1, 2}, visited)
	assert.Equal(t, 4, s.CountEntities())
}

func TestEntityIDsAreUniqueAndNeverReused(t *testing.T) {
	w := NewWorld()
	a := spawnCollectible(w, 0, 0)
	b := spawnCollectible(w, 0, 0)
	require.NotEqual(t, a, b)
	require.NotZero(t, a)

	w.RemoveEntity(a)
	w.Flush()
	w.Clear()
	c := spawnCollectible(w, 0, 0)
	assert.Greater(t, c, b)
}

func TestBuildCommitsAtomically(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity(core.TagCollectible, core.NewTransform(3, 4, 0.5))
	With(eb, w.Components.Collider, component.ColliderComponent{Shape: component.Circle(1), Layer: core.LayerCollectible})
	e := eb.Entity()

	assert.False(t, w.Components.Collider.HasEntity(e))
	assert.False(t, w.HasEntitiesByTag(core.TagCollectible))

	var spawned []event.EntitySpawnedPayload
	event.Connect(w.Signals, event.EntitySpawned, func(p event.EntitySpawnedPayload) {
		spawned = append(spawned, p)
	})
	require.Equal(t, e, eb.Build())

	tr, ok := w.Components.Transform.GetComponent(e)
	require.True(t, ok)
	assert.Equal(t, 3.0, tr.Position.X)
	assert.Equal(t, 0.5, tr.Rotation)
	assert.True(t, w.Components.Collider.HasEntity(e))
	assert.Equal(t, []event.EntitySpawnedPayload{{Entity: e, Tag: core.TagCollectible}}, spawned)

	assert.Panics(t, func() { eb.Build() })
	assert.Panics(t, func() {
		With(eb, w.Components.Appearance, component.AppearanceComponent{})
	})
}

func TestBuildEnforcesInvariants(t *testing.T) {
	w := NewWorld()

	t.Run("zero layer", func(t *testing.T) {
		eb := w.NewEntity(core.TagBound, core.NewTransform(0, 0, 0))
		With(eb, w.Components.Collider, component.ColliderComponent{Shape: component.Rectangle(1, 1)})
		assert.Panics(t, func() { eb.Build() })
	})

	t.Run("foe without settings", func(t *testing.T) {
		eb := w.NewEntity(core.TagFoe, core.NewTransform(0, 0, 0))
		With(eb, w.Components.RigidBody, component.RigidBodyComponent{})
		assert.Panics(t, func() { eb.Build() })
	})

	t.Run("player without collider", func(t *testing.T) {
		eb := w.NewEntity(core.TagPlayer, core.NewTransform(0, 0, 0))
		With(eb, w.Components.PlayerSettings, component.PlayerSettingsComponent{Radius: 24})
		assert.Panics(t, func() { eb.Build() })
	})

	t.Run("no tag", func(t *testing.T) {
		assert.Panics(t, func() { w.NewEntity(core.TagNone, core.Transform{}) })
	})

	assert.Equal(t, 0, w.EntityCount())
}

func TestWithReplacesStagedValue(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity(core.TagCollectible, core.NewTransform(0, 0, 0))
	With(eb, w.Components.Collider, component.ColliderComponent{Shape: component.Circle(1), Layer: core.LayerCollectible})
	With(eb, w.Components.Collider, component.ColliderComponent{Shape: component.Circle(5), Layer: core.LayerCollectible})
	e := eb.Build()

	c, _ := w.Components.Collider.GetComponent(e)
	assert.Equal(t, 5.0, c.Shape.Radius)
	assert.Equal(t, 1, w.Components.Collider.CountEntities())
}

func TestTagQueries(t *testing.T) {
	w := NewWorld()
	_, ok := w.FirstByTag(core.TagCollectible)
	assert.False(t, ok)

	a := spawnCollectible(w, 0, 0)
	f := spawnFoe(w, 0, 0)
	b := spawnCollectible(w, 0, 0)

	first, ok := w.FirstByTag(core.TagCollectible)
	require.True(t, ok)
	assert.Equal(t, a, first)
	assert.Equal(t, []core.Entity{a, b}, slices.Collect(w.EntitiesByTag(core.TagCollectible)))
	assert.Equal(t, []core.Entity{f}, slices.Collect(w.EntitiesByTag(core.TagFoe)))
	assert.False(t, w.HasEntitiesByTag(core.TagPlayer))

	tag, ok := w.Tag(f)
	require.True(t, ok)
	assert.Equal(t, core.TagFoe, tag)

	// Sequence is restartable and reflects the world at iteration time
	seq := w.EntitiesByTag(core.TagCollectible)
	assert.Equal(t, 2, len(slices.Collect(seq)))
	c := spawnCollectible(w, 0, 0)
	assert.Equal(t, []core.Entity{a, b, c}, slices.Collect(seq))
	assert.Equal(t, 3, w.CountByTag(core.TagCollectible))
}

func TestPendingRemovalPolicy(t *testing.T) {
	w := NewWorld()
	a := spawnCollectible(w, 1, 1)
	b := spawnCollectible(w, 2, 2)

	var removed []event.EntityRemovedPayload
	event.Connect(w.Signals, event.EntityRemoved, func(p event.EntityRemovedPayload) {
		removed = append(removed, p)
	})

	w.RemoveEntity(a)

	// Before flush: hidden from tag queries and liveness, components still readable
	assert.Equal(t, []core.Entity{b}, slices.Collect(w.EntitiesByTag(core.TagCollectible)))
	assert.False(t, w.IsAlive(a))
	assert.True(t, w.IsPending(a))
	assert.Equal(t, 1, w.EntityCount())
	assert.Equal(t, 1, w.PendingCount())
	_, ok := w.Components.Collider.GetComponent(a)
	assert.True(t, ok)
	tag, ok := w.Tag(a)
	assert.True(t, ok)
	assert.Equal(t, core.TagCollectible, tag)
	assert.Empty(t, removed)

	require.Equal(t, 1, w.Flush())

	// After flush: gone from every store
	assert.False(t, w.IsPending(a))
	assert.False(t, w.Components.Collider.HasEntity(a))
	assert.False(t, w.Components.Transform.HasEntity(a))
	_, ok = w.Tag(a)
	assert.False(t, ok)
	assert.Equal(t, []event.EntityRemovedPayload{{Entity: a, Tag: core.TagCollectible}}, removed)
	assert.Equal(t, 0, w.Flush())
}

func TestDoubleRemovalIsNoop(t *testing.T) {
	w := NewWorld()
	a := spawnCollectible(w, 0, 0)

	count := 0
	event.Connect(w.Signals, event.EntityRemoved, func(event.EntityRemovedPayload) { count++ })

	w.RemoveEntity(a)
	w.RemoveEntity(a)
	w.RemoveEntity(12345)
	assert.Equal(t, 1, w.Flush())
	w.RemoveEntity(a)
	assert.Equal(t, 0, w.Flush())
	assert.Equal(t, 1, count)
}

func TestFlushOrderAndCascade(t *testing.T) {
	w := NewWorld()
	a := spawnCollectible(w, 0, 0)
	b := spawnCollectible(w, 0, 0)
	f := spawnFoe(w, 0, 0)

	var order []core.Entity
	event.Connect(w.Signals, event.EntityRemoved, func(p event.EntityRemovedPayload) {
		order = append(order, p.Entity)
		if p.Entity == b {
			w.RemoveEntity(f)
		}
	})

	w.RemoveEntity(b)
	w.RemoveEntity(a)
	assert.Equal(t, 3, w.Flush())
	assert.Equal(t, []core.Entity{b, a, f}, order)
	assert.False(t, w.Components.FoeSettings.HasEntity(f))
	assert.Equal(t, 0, w.EntityCount())
}

func TestClearDropsEverythingSilently(t *testing.T) {
	w := NewWorld()
	spawnCollectible(w, 0, 0)
	f := spawnFoe(w, 0, 0)
	w.RemoveEntity(f)

	count := 0
	event.Connect(w.Signals, event.EntityRemoved, func(event.EntityRemovedPayload) { count++ })
	w.Clear()

	assert.Equal(t, 0, w.EntityCount())
	assert.Equal(t, 0, w.PendingCount())
	assert.Equal(t, 0, w.Flush())
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, w.Components.Transform.CountEntities())
	assert.False(t, w.HasEntitiesByTag(core.TagCollectible))
}

package engine

import (
	"iter"
	"slices"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/event"
)

// World contains all entities and their components using typed stores
// Removal is two-phase: RemoveEntity marks, Flush erases at the end of the fixed step
type World struct {
	nextEntityID core.Entity

	tags  map[core.Entity]core.Tag
	byTag map[core.Tag][]core.Entity // Spawn order per tag

	pending      map[core.Entity]struct{}
	pendingOrder []core.Entity

	Components ComponentStore
	Resources  Resource
	Signals    *event.Bus
	Timers     *Timers
}

// NewWorld creates an empty world with its own signal bus, timers and default resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		tags:         make(map[core.Entity]core.Tag),
		byTag:        make(map[core.Tag][]core.Entity),
		pending:      make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
		Signals:      event.NewBus(),
		Timers:       NewTimers(),
	}
	w.Resources = NewResource()
	return w
}

// CreateEntity reserves a new entity ID, never reused within this world
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// register makes a built entity visible to tag queries
func (w *World) register(e core.Entity, tag core.Tag) {
	w.tags[e] = tag
	w.byTag[tag] = append(w.byTag[tag], e)
}

// RemoveEntity requests removal; idempotent, unknown or already pending entities are ignored
// The entity leaves tag queries immediately, its components stay readable until Flush
func (w *World) RemoveEntity(e core.Entity) {
	if _, ok := w.tags[e]; !ok {
		return
	}
	if _, ok := w.pending[e]; ok {
		return
	}
	w.pending[e] = struct{}{}
	w.pendingOrder = append(w.pendingOrder, e)
}

// Flush erases every pending entity from all stores in request order and emits entity-removed once per entity
// Removals requested by entity-removed handlers are drained in the same call
// Returns the number of entities erased
func (w *World) Flush() int {
	flushed := 0
	for len(w.pendingOrder) > 0 {
		batch := w.pendingOrder
		w.pendingOrder = nil

		for _, s := range w.Components.stores() {
			s.RemoveBatch(batch)
		}

		removed := make([]event.EntityRemovedPayload, 0, len(batch))
		for _, e := range batch {
			tag := w.tags[e]
			delete(w.tags, e)
			delete(w.pending, e)
			w.byTag[tag] = slices.DeleteFunc(w.byTag[tag], func(x core.Entity) bool { return x == e })
			removed = append(removed, event.EntityRemovedPayload{Entity: e, Tag: tag})
		}
		flushed += len(batch)

		for _, p := range removed {
			event.Emit(w.Signals, event.EntityRemoved, p)
		}
	}
	return flushed
}

// Clear removes all entities and components without emitting signals
// The ID counter keeps counting so stale handles never alias new entities
func (w *World) Clear() {
	for _, s := range w.Components.stores() {
		s.ClearAllComponents()
	}
	w.tags = make(map[core.Entity]core.Tag)
	w.byTag = make(map[core.Tag][]core.Entity)
	w.pending = make(map[core.Entity]struct{})
	w.pendingOrder = nil
}

// Tag returns the tag of a known entity, including pending ones
func (w *World) Tag(e core.Entity) (core.Tag, bool) {
	tag, ok := w.tags[e]
	return tag, ok
}

// IsAlive reports whether e exists and is not pending removal
func (w *World) IsAlive(e core.Entity) bool {
	if _, ok := w.tags[e]; !ok {
		return false
	}
	_, pending := w.pending[e]
	return !pending
}

// IsPending reports whether e is marked for removal and not yet flushed
func (w *World) IsPending(e core.Entity) bool {
	_, ok := w.pending[e]
	return ok
}

// PendingCount returns the number of entities awaiting Flush
func (w *World) PendingCount() int {
	return len(w.pendingOrder)
}

// EntityCount returns the number of live (not pending) entities
func (w *World) EntityCount() int {
	return len(w.tags) - len(w.pending)
}

// EntitiesByTag yields live entities with tag in spawn order
// The sequence is lazy and restartable; each pass reflects the world at the time it runs
func (w *World) EntitiesByTag(tag core.Tag) iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		entities := w.byTag[tag]
		for _, e := range entities {
			if _, pending := w.pending[e]; pending {
				continue
			}
			if _, ok := w.tags[e]; !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// FirstByTag returns the earliest spawned live entity with tag
func (w *World) FirstByTag(tag core.Tag) (core.Entity, bool) {
	for e := range w.EntitiesByTag(tag) {
		return e, true
	}
	return 0, false
}

// HasEntitiesByTag reports whether any live entity carries tag
func (w *World) HasEntitiesByTag(tag core.Tag) bool {
	_, ok := w.FirstByTag(tag)
	return ok
}

// CountByTag returns the number of live entities with tag
func (w *World) CountByTag(tag core.Tag) int {
	n := 0
	for range w.EntitiesByTag(tag) {
		n++
	}
	return n
}

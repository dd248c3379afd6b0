package engine

import (
	"fmt"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/event"
)

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// It reserves an entity ID upfront and stages components until Build() commits them, so a
// half-built entity is never visible to stores or tag queries.
//
// Example usage:
//
//	e := world.NewEntity(core.TagFoe, core.NewTransform(x, y, 0))
//	engine.With(e, world.Components.RigidBody, body)
//	engine.With(e, world.Components.FoeSettings, settings)
//	id := e.Build()
type EntityBuilder struct {
	world     *World
	entity    core.Entity
	tag       core.Tag
	transform core.Transform
	staged    []func()
	values    map[any]any // store pointer -> staged component, for validation
	built     bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity(tag core.Tag, transform core.Transform) *EntityBuilder {
	if tag == core.TagNone {
		panic("engine: entity requires a tag")
	}
	return &EntityBuilder{
		world:     w,
		entity:    w.CreateEntity(),
		tag:       tag,
		transform: transform,
		values:    make(map[any]any),
	}
}

// Entity returns the reserved ID, valid before Build for cross-references
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// With stages a component of type T for the entity being built.
// The store type must match the component type; a later With on the same store replaces the value.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	if _, dup := eb.values[store]; !dup {
		e := eb.entity
		eb.staged = append(eb.staged, func() {
			store.SetComponent(e, eb.values[store].(T))
		})
	}
	eb.values[store] = comp
	return eb
}

// Build validates construction invariants, commits staged components and returns the entity ID.
// Emits entity-spawned after the entity becomes queryable.
// Panics on invariant violations; these are programmer errors in factories.
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		panic("entity already built")
	}
	eb.validate()
	eb.built = true

	w := eb.world
	w.Components.Transform.SetComponent(eb.entity, eb.transform)
	for _, apply := range eb.staged {
		apply()
	}
	w.register(eb.entity, eb.tag)

	event.Emit(w.Signals, event.EntitySpawned, event.EntitySpawnedPayload{Entity: eb.entity, Tag: eb.tag})
	return eb.entity
}

func (eb *EntityBuilder) validate() {
	c := &eb.world.Components

	if v, ok := eb.values[c.Collider]; ok {
		if v.(component.ColliderComponent).Layer == 0 {
			panic(fmt.Sprintf("engine: %s entity %d has a collider with no layer", eb.tag, eb.entity))
		}
	}

	var required []any
	switch eb.tag {
	case core.TagFoe:
		required = []any{c.RigidBody, c.FoeSettings, c.FoeState}
	case core.TagPlayer:
		required = []any{c.PlayerSettings, c.Collider}
	case core.TagBullet:
		required = []any{c.RigidBody, c.Bullet}
	case core.TagCollectible, core.TagBound:
		required = []any{c.Collider}
	}
	for _, store := range required {
		if _, ok := eb.values[store]; !ok {
			panic(fmt.Sprintf("engine: %s entity %d missing %T", eb.tag, eb.entity, store))
		}
	}
}

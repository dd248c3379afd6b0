package engine

import (
	"github.com/lixenwraith/dodge/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface allows World to manage all stores uniformly
// for operations like entity destruction without knowing the concrete type
type AnyStore interface {
	// RemoveEntity deletes a component from an entity
	RemoveEntity(e core.Entity)

	// RemoveBatch deletes components of several entities in one pass
	RemoveBatch(entities []core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}

var _ AnyStore = (*Store[struct{}])(nil)

package engine

import (
	"iter"

	"github.com/lixenwraith/dodge/core"
)

// Store holds every component of type T in dense parallel slices plus an entity → slot index
// Insertion order is kept. Removal rebuilds the slices, so an iteration already running keeps its snapshot
// No locking: only the active tick touches the World
type Store[T any] struct {
	slot     map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{slot: make(map[core.Entity]int)}
}

// SetComponent inserts or overwrites the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if i, ok := s.slot[e]; ok {
		s.values[i] = val
		return
	}
	s.slot[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	i, ok := s.slot[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, ok := s.slot[e]; !ok {
		return
	}
	s.RemoveBatch([]core.Entity{e})
}

func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.slot[e]
	return ok
}

// GetAllEntities returns a copy of the entity list in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// All yields every (entity, component) pair present when iteration starts
// Entities added during iteration are not visited; entities whose component is removed mid-iteration are skipped
func (s *Store[T]) All() iter.Seq2[core.Entity, T] {
	return func(yield func(core.Entity, T) bool) {
		snapshot := s.entities
		for _, e := range snapshot {
			i, ok := s.slot[e]
			if !ok {
				continue
			}
			if !yield(e, s.values[i]) {
				return
			}
		}
	}
}

func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

func (s *Store[T]) ClearAllComponents() {
	s.slot = make(map[core.Entity]int)
	s.entities = nil
	s.values = nil
}

// RemoveBatch drops the components of every listed entity and compacts once
// Unknown and duplicate entries are ignored
func (s *Store[T]) RemoveBatch(batch []core.Entity) {
	removed := 0
	for _, e := range batch {
		if _, ok := s.slot[e]; ok {
			delete(s.slot, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	n := len(s.entities) - removed
	entities := make([]core.Entity, 0, n)
	values := make([]T, 0, n)
	for i, e := range s.entities {
		if _, ok := s.slot[e]; !ok {
			continue
		}
		s.slot[e] = len(entities)
		entities = append(entities, e)
		values = append(values, s.values[i])
	}
	s.entities, s.values = entities, values
}

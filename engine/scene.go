package engine

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/event"
)

// Scene owns an ordered system list and the procedure that spawns its initial entities
type Scene struct {
	Name string

	world       *World
	systems     []System
	build       func(w *World)
	disposables event.Disposables
	running     bool
}

// NewScene creates a scene; systems are ordered by priority, ties keep declaration order
func NewScene(w *World, name string, build func(w *World), systems ...System) *Scene {
	sorted := slices.Clone(systems)
	slices.SortStableFunc(sorted, func(a, b System) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return &Scene{
		Name:    name,
		world:   w,
		systems: sorted,
		build:   build,
	}
}

// Systems returns the systems in execution order
func (s *Scene) Systems() []System {
	return s.systems
}

// IsRunning reports whether Start was called without a matching Stop
func (s *Scene) IsRunning() bool {
	return s.running
}

// Own ties extra handles to the scene lifetime
func (s *Scene) Own(items ...event.Disposable) {
	s.disposables.Add(items...)
}

// Start initializes systems in order, collecting their handles, then builds the entity set
// Emits scene-reset once the initial entities exist
func (s *Scene) Start() {
	if s.running {
		panic("engine: scene " + s.Name + " already running")
	}
	s.running = true

	for _, sys := range s.systems {
		if in, ok := sys.(Initializer); ok {
			s.disposables.Add(in.Init()...)
		}
	}
	if s.build != nil {
		s.build(s.world)
	}

	s.world.Resources.Log.Debug("scene started",
		zap.String("scene", s.Name),
		zap.Int("systems", len(s.systems)),
		zap.Int("entities", s.world.EntityCount()),
	)
	event.Emit(s.world.Signals, event.SceneReset, event.SceneResetPayload{Scene: s.Name})
}

// Stop releases every handle acquired by Start or Own; entities are left to the caller
func (s *Scene) Stop() {
	if !s.running {
		return
	}
	s.disposables.DisposeAll()
	s.running = false
	s.world.Resources.Log.Debug("scene stopped", zap.String("scene", s.Name))
}

package system

import (
	"sync/atomic"

	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/physics"
)

// PhysicsSystem integrates kinematic bodies and rebuilds sensor contacts
// Runs first in the fixed step so gameplay systems react to fresh contacts
type PhysicsSystem struct {
	engine.SystemBase
	layers physics.LayerMap

	statMoved     *atomic.Int64
	statColliders *atomic.Int64
	statFiltered  *atomic.Int64
	statTested    *atomic.Int64
	statTouching  *atomic.Int64
}

// NewPhysicsSystem creates a physics system using layers as the collision relation
func NewPhysicsSystem(world *engine.World, layers physics.LayerMap) engine.System {
	s := &PhysicsSystem{
		SystemBase: engine.NewSystemBase(world),
		layers:     layers,
	}
	ints := world.Resources.Status.Ints
	s.statMoved = ints.Get("physics.moved")
	s.statColliders = ints.Get("physics.colliders")
	s.statFiltered = ints.Get("physics.filtered")
	s.statTested = ints.Get("physics.tested")
	s.statTouching = ints.Get("physics.touching")
	return s
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

// FixedUpdate moves bodies by one step, then recomputes contacts at the new positions
func (s *PhysicsSystem) FixedUpdate(dt float64) {
	moved := physics.Integrate(s.World, dt)
	stats := physics.RefreshContacts(s.World, s.layers)

	s.statMoved.Store(int64(moved))
	s.statColliders.Store(int64(stats.Colliders))
	s.statFiltered.Store(int64(stats.Filtered))
	s.statTested.Store(int64(stats.Tested))
	s.statTouching.Store(int64(stats.Touching))
}

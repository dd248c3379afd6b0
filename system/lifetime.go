package system

import (
	"sync/atomic"

	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
)

// LifetimeSystem ages bullets and removes them once they outlive their limit
type LifetimeSystem struct {
	engine.SystemBase

	statExpired *atomic.Int64
}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem(world *engine.World) engine.System {
	s := &LifetimeSystem{SystemBase: engine.NewSystemBase(world)}
	s.statExpired = world.Resources.Status.Ints.Get("lifetime.expired")
	return s
}

func (s *LifetimeSystem) Name() string {
	return "lifetime"
}

func (s *LifetimeSystem) Priority() int {
	return parameter.PriorityLifetime
}

// FixedUpdate ages by the step duration; a zero limit never expires
func (s *LifetimeSystem) FixedUpdate(dt float64) {
	step := s.Resource.Time.DeltaTime

	for e, b := range s.Component.Bullet.All() {
		if !s.World.IsAlive(e) {
			continue
		}
		b.Lifetime += step
		if b.MaxLifetime > 0 && b.Lifetime >= b.MaxLifetime {
			s.World.RemoveEntity(e)
			s.statExpired.Add(1)
			continue
		}
		s.Component.Bullet.SetComponent(e, b)
	}
}

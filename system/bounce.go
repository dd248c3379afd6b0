package system

import (
	"sync/atomic"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/vmath"
)

// BounceSystem reflects bouncing bodies off walls and each other
// A bouncing body is kinematic with positive restitution and carries a sensor
type BounceSystem struct {
	engine.SystemBase

	statBounces *atomic.Int64
}

// NewBounceSystem creates a new bounce system
func NewBounceSystem(world *engine.World) engine.System {
	s := &BounceSystem{SystemBase: engine.NewSystemBase(world)}
	s.statBounces = world.Resources.Status.Ints.Get("bounce.count")
	return s
}

func (s *BounceSystem) Name() string {
	return "bounce"
}

func (s *BounceSystem) Priority() int {
	return parameter.PriorityBounce
}

func (s *BounceSystem) FixedUpdate(dt float64) {
	for e, sensor := range s.Component.Sensor.All() {
		if len(sensor.Contacts) == 0 || !s.World.IsAlive(e) {
			continue
		}
		body, ok := s.Component.RigidBody.GetComponent(e)
		if !ok || !body.IsKinematic() || body.Restitution <= 0 {
			continue
		}
		tr, ok := s.Component.Transform.GetComponent(e)
		if !ok {
			continue
		}

		vel := body.Velocity
		var push vmath.Vec2
		bounced := false
		for _, other := range sensor.ContactEntities() {
			tag, _ := s.World.Tag(other)
			c := sensor.Contacts[other]

			switch tag {
			case core.TagBound:
				push = vmath.V2Add(push, vmath.V2Scale(c.Normal, c.Depth))
			case core.TagBullet:
				// Both sides resolve their own half
				push = vmath.V2Add(push, vmath.V2Scale(c.Normal, c.Depth/2))
			default:
				continue
			}
			next := physics.Reflect(vel, c.Normal, body.Restitution)
			if next != vel {
				bounced = true
				vel = next
			}
		}

		if !bounced && push == (vmath.Vec2{}) {
			continue
		}
		body.Velocity = vel
		tr.Position = vmath.V2Add(tr.Position, push)
		s.Component.RigidBody.SetComponent(e, body)
		s.Component.Transform.SetComponent(e, tr)
		if bounced {
			s.statBounces.Add(1)
		}
	}
}

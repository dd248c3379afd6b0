package system

import (
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/vmath"
)

// ChaseSystem turns every foe toward the player at its angular speed and drives it along its facing
type ChaseSystem struct {
	engine.SystemBase
}

// NewChaseSystem creates a new chase system
func NewChaseSystem(world *engine.World) engine.System {
	return &ChaseSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ChaseSystem) Name() string {
	return "chase"
}

func (s *ChaseSystem) Priority() int {
	return parameter.PriorityChase
}

// FixedUpdate steers foes; no player means nothing to chase
func (s *ChaseSystem) FixedUpdate(dt float64) {
	player, ok := s.World.FirstByTag(core.TagPlayer)
	if !ok {
		return
	}
	ptr, ok := s.Component.Transform.GetComponent(player)
	if !ok {
		return
	}

	for foe := range s.World.EntitiesByTag(core.TagFoe) {
		tr, ok := s.Component.Transform.GetComponent(foe)
		if !ok {
			continue
		}
		settings, ok := s.Component.FoeSettings.GetComponent(foe)
		if !ok {
			continue
		}
		body, ok := s.Component.RigidBody.GetComponent(foe)
		if !ok {
			continue
		}

		tr.Rotation = Steer(tr.Position, tr.Rotation, ptr.Position, settings.AngularSpeed*dt)
		body.Velocity = vmath.V2Scale(vmath.V2FromAngle(tr.Rotation), settings.LinearSpeed)

		s.Component.Transform.SetComponent(foe, tr)
		s.Component.RigidBody.SetComponent(foe, body)
	}
}

// Steer returns facing rotated by at most maxTurn toward target along the shorter arc, in [0, 2π)
// A target on top of from leaves the facing unchanged
func Steer(from vmath.Vec2, facing float64, target vmath.Vec2, maxTurn float64) float64 {
	dir := vmath.V2Normalize(vmath.V2Sub(target, from))
	if dir == (vmath.Vec2{}) {
		return vmath.NormalizeAngle(facing)
	}
	delta := vmath.ShortestAngleDelta(facing, vmath.AngleOf(dir))
	return vmath.NormalizeAngle(facing + vmath.Sign(delta)*maxTurn)
}

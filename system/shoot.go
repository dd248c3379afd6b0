package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/physics"
	"github.com/lixenwraith/dodge/vmath"
)

// ShootSystem fires a bullet from each foe whose cooldown elapsed and whose sight ray sees the player
type ShootSystem struct {
	engine.SystemBase

	statFired   *atomic.Int64
	statBlocked *atomic.Int64
}

// NewShootSystem creates a new shoot system
func NewShootSystem(world *engine.World) engine.System {
	s := &ShootSystem{SystemBase: engine.NewSystemBase(world)}
	s.statFired = world.Resources.Status.Ints.Get("shoot.fired")
	s.statBlocked = world.Resources.Status.Ints.Get("shoot.no_sight")
	return s
}

func (s *ShootSystem) Name() string {
	return "shoot"
}

func (s *ShootSystem) Priority() int {
	return parameter.PriorityShoot
}

func (s *ShootSystem) FixedUpdate(dt float64) {
	now := s.Resource.Time.GameTime
	cooldown := s.Resource.Config.Foe.ShotCooldown

	for foe := range s.World.EntitiesByTag(core.TagFoe) {
		state, ok := s.Component.FoeState.GetComponent(foe)
		if !ok {
			continue
		}
		if now-state.LastShotAt < cooldown {
			continue
		}
		if _, seen := physics.CastNamed(s.World, foe, entity.SightRay); !seen {
			s.statBlocked.Add(1)
			continue
		}
		s.fire(foe, state)
	}
}

func (s *ShootSystem) fire(foe core.Entity, state component.FoeStateComponent) {
	tr, ok := s.Component.Transform.GetComponent(foe)
	if !ok {
		return
	}
	body, ok := s.Component.RigidBody.GetComponent(foe)
	if !ok {
		return
	}
	settings, ok := s.Component.FoeSettings.GetComponent(foe)
	if !ok {
		return
	}
	cfg := s.Resource.Config
	now := s.Resource.Time.GameTime

	muzzle := vmath.V2Add(tr.Position, vmath.V2Scale(vmath.V2FromAngle(tr.Rotation), settings.Radius))
	vel, _ := physics.CapSpeed(vmath.V2Scale(body.Velocity, cfg.Bullet.SpeedFactor), cfg.Bullet.MaxSpeed)
	bullet := entity.CreateBullet(s.World, foe, muzzle, vel)

	if now > state.LastShotAt {
		state.LastShotAt = now
	}
	state.Shots++
	s.Component.FoeState.SetComponent(foe, state)
	s.statFired.Add(1)

	s.Resource.Log.Debug("foe fired",
		zap.Uint64("foe", uint64(foe)),
		zap.Uint64("bullet", uint64(bullet)),
		zap.Duration("at", now),
	)
	event.Emit(s.World.Signals, event.FoeFired, event.FoeFiredPayload{Foe: foe, Bullet: bullet})
}

package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/parameter"
)

// InteractionSystem resolves what the player touches: collectibles are picked up, foes and bullets kill
type InteractionSystem struct {
	engine.SystemBase

	statCollected *atomic.Int64
	statHits      *atomic.Int64
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(world *engine.World) engine.System {
	s := &InteractionSystem{SystemBase: engine.NewSystemBase(world)}
	s.statCollected = world.Resources.Status.Ints.Get("interaction.collected")
	s.statHits = world.Resources.Status.Ints.Get("interaction.hits")
	return s
}

func (s *InteractionSystem) Name() string {
	return "interaction"
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

// FixedUpdate processes every current contact of the player in ascending id order
func (s *InteractionSystem) FixedUpdate(dt float64) {
	player, ok := s.World.FirstByTag(core.TagPlayer)
	if !ok {
		return
	}
	sensor, ok := s.Component.Sensor.GetComponent(player)
	if !ok {
		return
	}
	points := s.Resource.Config.Collectible.Points

	for _, other := range sensor.ContactEntities() {
		if !s.World.IsAlive(other) {
			continue
		}
		tag, _ := s.World.Tag(other)

		switch tag {
		case core.TagCollectible:
			s.World.RemoveEntity(other)
			s.statCollected.Add(1)
			event.Emit(s.World.Signals, event.ItemCollected, event.ItemCollectedPayload{Points: points})

		case core.TagFoe, core.TagBullet:
			if s.World.IsPending(player) {
				continue
			}
			s.World.RemoveEntity(player)
			s.statHits.Add(1)
			s.Resource.Log.Debug("player hit",
				zap.Uint64("by", uint64(other)),
				zap.Stringer("tag", tag),
			)

		case core.TagPlayer, core.TagBound, core.TagNone:
			// Not part of the player relation
		}
	}
}

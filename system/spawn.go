package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/entity"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/parameter"
)

// SpawnSystem replaces every collected item with a new one at a random position
type SpawnSystem struct {
	engine.SystemBase

	statSpawned *atomic.Int64
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{SystemBase: engine.NewSystemBase(world)}
	s.statSpawned = world.Resources.Status.Ints.Get("spawn.collectibles")
	return s
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Init() []event.Disposable {
	return []event.Disposable{
		event.Connect(s.World.Signals, event.ItemCollected, s.onItemCollected),
	}
}

func (s *SpawnSystem) onItemCollected(event.ItemCollectedPayload) {
	e := entity.CreateCollectible(s.World)
	s.statSpawned.Add(1)

	if ce := s.Resource.Log.Check(zap.DebugLevel, "collectible spawned"); ce != nil {
		tr, _ := s.Component.Transform.GetComponent(e)
		ce.Write(
			zap.Uint64("entity", uint64(e)),
			zap.Float64("x", tr.Position.X),
			zap.Float64("y", tr.Position.Y),
		)
	}
}

package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/status"
)

// DifficultySystem speeds up every foe each time an item is collected, without a cap
type DifficultySystem struct {
	engine.SystemBase

	statLevel   *atomic.Int64
	statLinear  *status.AtomicFloat
	statAngular *status.AtomicFloat
}

// NewDifficultySystem creates a new difficulty system
func NewDifficultySystem(world *engine.World) engine.System {
	s := &DifficultySystem{SystemBase: engine.NewSystemBase(world)}
	reg := world.Resources.Status
	s.statLevel = reg.Ints.Get("difficulty.level")
	s.statLinear = reg.Floats.Get("difficulty.linear_bonus")
	s.statAngular = reg.Floats.Get("difficulty.angular_bonus")
	return s
}

func (s *DifficultySystem) Name() string {
	return "difficulty"
}

func (s *DifficultySystem) Priority() int {
	return parameter.PriorityDifficulty
}

// Init resets the level and subscribes to item pickups
func (s *DifficultySystem) Init() []event.Disposable {
	s.statLevel.Store(0)
	s.statLinear.Set(0)
	s.statAngular.Set(0)
	return []event.Disposable{
		event.Connect(s.World.Signals, event.ItemCollected, s.onItemCollected),
	}
}

func (s *DifficultySystem) onItemCollected(event.ItemCollectedPayload) {
	cfg := s.Resource.Config
	raised := 0
	for e, fs := range s.Component.FoeSettings.All() {
		if !s.World.IsAlive(e) {
			continue
		}
		fs.LinearSpeed += cfg.Difficulty.LinearSpeedStep
		fs.AngularSpeed += cfg.Difficulty.AngularSpeedStep
		s.Component.FoeSettings.SetComponent(e, fs)
		raised++
	}
	level := s.statLevel.Add(1)
	bonus := s.statLinear.Add(cfg.Difficulty.LinearSpeedStep)
	s.statAngular.Add(cfg.Difficulty.AngularSpeedStep)
	s.Resource.Log.Debug("difficulty raised",
		zap.Int64("level", level),
		zap.Int("foes", raised),
		zap.Float64("linear_bonus", bonus),
	)
}

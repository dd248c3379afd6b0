package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/parameter"
	"github.com/lixenwraith/dodge/status"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *parameter.Config
	Game   *GameState

	// Telemetry
	Status *status.Registry
	Log    *zap.Logger

	// Rand is the only randomness source of the simulation; seeded for reproducible sessions
	Rand *rand.Rand
}

// NewResource returns defaults: built-in config, fixed seed, no-op logger
func NewResource() Resource {
	return Resource{
		Time:   &TimeResource{},
		Config: parameter.DefaultConfig(),
		Game:   NewGameState(),
		Status: status.NewRegistry(),
		Log:    zap.NewNop(),
		Rand:   rand.New(rand.NewSource(1)),
	}
}

// TimeResource wraps time data for systems
// It is updated by the ClockScheduler at the start of every fixed step
type TimeResource struct {
	// GameTime is the fixed-step game clock, monotonic across restarts and frozen while paused
	GameTime time.Duration

	// DeltaTime is the duration of the current step
	DeltaTime time.Duration

	// TickCount is the number of fixed steps executed
	TickCount uint64
}

// Update advances the clock by one step in-place (zero allocation)
func (tr *TimeResource) Update(delta time.Duration) {
	tr.GameTime += delta
	tr.DeltaTime = delta
	tr.TickCount++
}

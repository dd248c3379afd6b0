package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// ClockScheduler drives a scene: variable-rate Update once per frame, then fixed steps from an accumulator
// Each fixed step: time resource, FixedUpdate in scene order, World.Flush, timers
type ClockScheduler struct {
	world *World
	scene *Scene

	step       time.Duration
	maxCatchUp int

	accumulator time.Duration

	// Cached metric pointers
	statTicks   *atomic.Int64
	statFlushed *atomic.Int64
	statDropped *atomic.Int64
	statLive    *atomic.Int64
}

// NewClockScheduler creates a scheduler with step and catch-up limits taken from the config resource
func NewClockScheduler(world *World) *ClockScheduler {
	cfg := world.Resources.Config
	reg := world.Resources.Status
	return &ClockScheduler{
		world:       world,
		step:        cfg.Loop.FixedStep,
		maxCatchUp:  cfg.Loop.MaxCatchUp,
		statTicks:   reg.Ints.Get("engine.ticks"),
		statFlushed: reg.Ints.Get("engine.flushed"),
		statDropped: reg.Ints.Get("engine.dropped_steps"),
		statLive:    reg.Ints.Get("engine.entities"),
	}
}

// SetScene switches the scheduled scene and discards accumulated time
func (cs *ClockScheduler) SetScene(s *Scene) {
	cs.scene = s
	cs.accumulator = 0
}

// Scene returns the scheduled scene, nil before SetScene
func (cs *ClockScheduler) Scene() *Scene {
	return cs.scene
}

// StepDuration returns the fixed step
func (cs *ClockScheduler) StepDuration() time.Duration {
	return cs.step
}

// Accumulated returns time carried over to the next Advance
func (cs *ClockScheduler) Accumulated() time.Duration {
	return cs.accumulator
}

// Advance runs one frame worth of work for elapsed play time and returns the number of fixed steps executed
// Nothing runs while the game is paused or over; elapsed time during that period is discarded
func (cs *ClockScheduler) Advance(elapsed time.Duration) int {
	if cs.scene == nil || elapsed < 0 {
		return 0
	}
	game := cs.world.Resources.Game
	if game.IsPaused() || game.IsOver() {
		cs.accumulator = 0
		return 0
	}

	frameDt := elapsed.Seconds()
	for _, sys := range cs.scene.systems {
		if u, ok := sys.(Updater); ok {
			u.Update(frameDt)
		}
	}

	cs.accumulator += elapsed
	steps := 0
	for cs.accumulator >= cs.step {
		if steps == cs.maxCatchUp {
			dropped := int64(cs.accumulator / cs.step)
			cs.statDropped.Add(dropped)
			cs.world.Resources.Log.Debug("dropping fixed steps", zap.Int64("steps", dropped))
			cs.accumulator %= cs.step
			break
		}
		cs.Step()
		cs.accumulator -= cs.step
		steps++
		if game.IsOver() {
			cs.accumulator = 0
			break
		}
	}
	return steps
}

// Step executes exactly one fixed step regardless of pause state
func (cs *ClockScheduler) Step() {
	if cs.scene == nil {
		return
	}
	timeRes := cs.world.Resources.Time
	timeRes.Update(cs.step)
	dt := cs.step.Seconds()

	for _, sys := range cs.scene.systems {
		if f, ok := sys.(FixedUpdater); ok {
			f.FixedUpdate(dt)
		}
	}

	flushed := cs.world.Flush()
	cs.world.Timers.Advance(timeRes.GameTime)

	cs.statTicks.Store(int64(timeRes.TickCount))
	cs.statFlushed.Add(int64(flushed))
	cs.statLive.Store(int64(cs.world.EntityCount()))
}

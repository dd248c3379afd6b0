package game

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/dodge/core"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/event"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/scene"
	"github.com/lixenwraith/dodge/status"
)

// SoundPlayer receives gameplay cues; implementations must not block
type SoundPlayer interface {
	PlayCollect()
	PlayFire()
	PlayGameOver()
}

// Muter is implemented by sound players that support toggling output
type Muter interface {
	ToggleMute() bool
}

type nopSound struct{}

func (nopSound) PlayCollect()  {}
func (nopSound) PlayFire()     {}
func (nopSound) PlayGameOver() {}

// SceneFactory builds the scene started on Start and on every Restart
type SceneFactory func(w *engine.World, hub *input.Hub) *engine.Scene

// Session owns one play session: the world, the scheduled scene and the score bookkeeping
// All methods run on the main loop goroutine
type Session struct {
	// ===== Immutable After Init =====

	World     *engine.World
	Hub       *input.Hub
	Scheduler *engine.ClockScheduler
	Clock     *engine.PausableClock

	factory SceneFactory
	sound   SoundPlayer

	// ===== Main-Loop Exclusive =====

	scene    *engine.Scene
	handles  event.Disposables
	restarts int

	// ===== Atomic =====

	muted atomic.Bool

	// Cached metric pointers
	statScene    *status.AtomicString
	statPaused   *atomic.Bool
	statOver     *atomic.Bool
	statScore    *atomic.Int64
	statRestarts *atomic.Int64
	statFrames   *atomic.Int64
}

// Option customizes a Session
type Option func(*Session)

// WithSound routes gameplay cues to p
func WithSound(p SoundPlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithSceneFactory replaces the main scene factory
func WithSceneFactory(f SceneFactory) Option {
	return func(s *Session) {
		if f != nil {
			s.factory = f
		}
	}
}

// WithClock supplies the play clock sampled by Tick
func WithClock(c *engine.PausableClock) Option {
	return func(s *Session) {
		if c != nil {
			s.Clock = c
		}
	}
}

// NewSession creates a session over w; nothing runs until Start
func NewSession(w *engine.World, hub *input.Hub, opts ...Option) *Session {
	s := &Session{
		World:     w,
		Hub:       hub,
		Scheduler: engine.NewClockScheduler(w),
		factory:   scene.NewMain,
		sound:     nopSound{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Clock == nil {
		s.Clock = engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	}

	reg := w.Resources.Status
	s.statScene = reg.Strings.Get("session.scene")
	s.statPaused = reg.Bools.Get("game.paused")
	s.statOver = reg.Bools.Get("game.over")
	s.statScore = reg.Ints.Get("game.score")
	s.statRestarts = reg.Ints.Get("session.restarts")
	s.statFrames = reg.Ints.Get("session.frames")
	return s
}

// Start connects the session handlers and starts the first scene
func (s *Session) Start() {
	if s.scene != nil {
		return
	}
	w := s.World
	s.handles.Add(
		event.Connect(w.Signals, event.ItemCollected, s.onItemCollected),
		event.Connect(w.Signals, event.EntityRemoved, s.onEntityRemoved),
		event.Connect(w.Signals, event.FoeFired, s.onFoeFired),
		w.Signals.Observe(s.logSignal),
	)
	if period := w.Resources.Config.Loop.Telemetry; period > 0 {
		s.handles.Add(w.Timers.Every(period, s.logTelemetry))
	}

	s.startScene()
	w.Resources.Log.Info("session started",
		zap.String("scene", s.scene.Name),
		zap.String("seed", w.Resources.Config.Seed),
	)
}

func (s *Session) startScene() {
	s.scene = s.factory(s.World, s.Hub)
	s.Scheduler.SetScene(s.scene)
	s.statScene.Store(s.scene.Name)
	s.scene.Start()
}

// Scene returns the running scene, nil before Start
func (s *Session) Scene() *engine.Scene {
	return s.scene
}

// Restarts returns the number of completed restarts
func (s *Session) Restarts() int {
	return s.restarts
}

// Tick samples the play clock and advances the simulation, returning the fixed steps run
func (s *Session) Tick() int {
	return s.Advance(s.Clock.Elapsed())
}

// Advance runs the scheduler for elapsed play time
func (s *Session) Advance(elapsed time.Duration) int {
	return s.Scheduler.Advance(elapsed)
}

// FrameRendered counts a presented frame into the telemetry snapshot
func (s *Session) FrameRendered() int64 {
	return s.statFrames.Add(1)
}

// TogglePause flips the pause flag and the play clock together; ignored once the game is over
func (s *Session) TogglePause() bool {
	game := s.World.Resources.Game
	if game.IsOver() {
		return game.IsPaused()
	}
	paused := game.TogglePaused()
	s.statPaused.Store(paused)
	if paused {
		s.Clock.Pause()
	} else {
		s.Clock.Resume()
	}
	s.World.Resources.Log.Debug("pause toggled", zap.Bool("paused", paused))
	return paused
}

// Restart tears the scene down and rebuilds it from scratch; the best score and game clock carry over
func (s *Session) Restart() {
	if s.scene == nil {
		s.Start()
		return
	}
	w := s.World
	prev := w.Resources.Game.GetScore()

	s.scene.Stop()
	w.Clear()
	w.Resources.Game.Reset()
	s.Clock.Resume()
	s.Clock.Elapsed()
	s.statPaused.Store(false)
	s.statOver.Store(false)
	s.statScore.Store(0)

	s.startScene()
	s.restarts++
	s.statRestarts.Store(int64(s.restarts))
	w.Resources.Log.Info("session restarted",
		zap.Int("restarts", s.restarts),
		zap.Int64("previous_score", prev),
		zap.Int64("best", w.Resources.Game.BestScore()),
	)
}

// ToggleMute flips sound output; reports the new mute state
func (s *Session) ToggleMute() bool {
	if m, ok := s.sound.(Muter); ok {
		muted := m.ToggleMute()
		s.muted.Store(muted)
		return muted
	}
	muted := !s.muted.Load()
	s.muted.Store(muted)
	return muted
}

// IsMuted reports the last mute state set through ToggleMute
func (s *Session) IsMuted() bool {
	return s.muted.Load()
}

// HandleIntent applies a key intent; returns false when the session should end
func (s *Session) HandleIntent(intent input.IntentType) bool {
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentPause:
		s.TogglePause()
	case input.IntentRestart:
		s.Restart()
	case input.IntentToggleMute:
		s.ToggleMute()
	}
	return true
}

// Close stops the scene and releases session handlers
func (s *Session) Close() {
	if s.scene != nil {
		s.scene.Stop()
	}
	s.handles.DisposeAll()
	s.World.Resources.Log.Info("session closed",
		zap.Int64("score", s.World.Resources.Game.GetScore()),
		zap.Int64("best", s.World.Resources.Game.BestScore()),
		zap.Uint64("ticks", s.World.Resources.Time.TickCount),
	)
}

func (s *Session) onItemCollected(p event.ItemCollectedPayload) {
	score := s.World.Resources.Game.AddScore(p.Points)
	s.statScore.Store(score)
	s.sound.PlayCollect()
	s.World.Resources.Log.Debug("score", zap.Int64("score", score))
}

func (s *Session) onEntityRemoved(p event.EntityRemovedPayload) {
	if p.Tag != core.TagPlayer {
		return
	}
	game := s.World.Resources.Game
	if !game.SetOver() {
		return
	}
	s.statOver.Store(true)
	payload := event.GameOverPayload{Score: game.GetScore(), Best: game.BestScore()}
	event.Emit(s.World.Signals, event.GameOver, payload)
	s.sound.PlayGameOver()
	s.World.Resources.Log.Info("game over",
		zap.Int64("score", payload.Score),
		zap.Int64("best", payload.Best),
		zap.Duration("game_time", s.World.Resources.Time.GameTime),
	)
}

func (s *Session) onFoeFired(event.FoeFiredPayload) {
	s.sound.PlayFire()
}

func (s *Session) logSignal(et event.EventType, payload any) {
	if ce := s.World.Resources.Log.Check(zap.DebugLevel, "signal"); ce != nil {
		ce.Write(zap.Stringer("type", et), zap.Any("payload", payload))
	}
}

func (s *Session) logTelemetry() {
	s.World.Resources.Log.Info("telemetry", s.World.Resources.Status.Fields()...)
}

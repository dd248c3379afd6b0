package engine

import "sync/atomic"

// GameState is the session record shared by the simulation, the session and the renderer
// Atomics let the renderer read it without touching the World
type GameState struct {
	Paused atomic.Bool
	Over   atomic.Bool
	Score  atomic.Int64

	// Best survives Reset for the lifetime of the process, never persisted
	Best atomic.Int64
}

// NewGameState creates a zeroed game state
func NewGameState() *GameState {
	return &GameState{}
}

func (gs *GameState) IsPaused() bool       { return gs.Paused.Load() }
func (gs *GameState) SetPaused(paused bool) { gs.Paused.Store(paused) }
func (gs *GameState) IsOver() bool         { return gs.Over.Load() }
func (gs *GameState) GetScore() int64      { return gs.Score.Load() }
func (gs *GameState) BestScore() int64     { return gs.Best.Load() }

// TogglePaused flips the pause flag and returns the new value
func (gs *GameState) TogglePaused() bool {
	for {
		old := gs.Paused.Load()
		if gs.Paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// AddScore adds points and raises the best score when exceeded, returns the new score
func (gs *GameState) AddScore(points int) int64 {
	score := gs.Score.Add(int64(points))
	for {
		best := gs.Best.Load()
		if score <= best || gs.Best.CompareAndSwap(best, score) {
			return score
		}
	}
}

// SetOver marks the session finished; returns false if it already was
func (gs *GameState) SetOver() bool {
	return gs.Over.CompareAndSwap(false, true)
}

// Reset clears per-session state for a scene rebuild, keeping the best score
func (gs *GameState) Reset() {
	gs.Paused.Store(false)
	gs.Over.Store(false)
	gs.Score.Store(0)
}

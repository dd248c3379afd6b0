package engine

import (
	"sync"
	"time"
)

// PausableClock measures elapsed play time, excluding paused intervals
// The frame loop samples it with Elapsed and feeds the result to ClockScheduler.Advance
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider

	startTime       time.Time
	lastSample      time.Duration // Play time at the previous Elapsed call
	isPaused        bool
	pauseStartTime  time.Time     // When current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock reading from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Now returns play time since creation, frozen while paused
func (pc *PausableClock) Now() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.nowLocked()
}

func (pc *PausableClock) nowLocked() time.Duration {
	end := pc.provider.Now()
	if pc.isPaused {
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// Elapsed returns play time since the previous call
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.nowLocked()
	d := now - pc.lastSample
	pc.lastSample = now
	return d
}

// Pause stops play time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues play time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.isPaused
}

// GetTotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

package engine

import (
	"time"

	"github.com/lixenwraith/dodge/event"
)

// Timers is the repeating-callback primitive driven by fixed steps on the game clock
type Timers struct {
	now     time.Duration
	entries []*timerEntry
}

type timerEntry struct {
	period time.Duration
	next   time.Duration
	fn     func()
	active bool
}

// NewTimers creates an empty timer set
func NewTimers() *Timers {
	return &Timers{}
}

// Every calls fn each time period elapses on the game clock, first call one period from now
// Panics on a non-positive period
func (t *Timers) Every(period time.Duration, fn func()) event.Disposable {
	if period <= 0 {
		panic("engine: timer period must be positive")
	}
	entry := &timerEntry{period: period, next: t.now + period, fn: fn, active: true}
	t.entries = append(t.entries, entry)
	return event.DisposeFunc(func() { entry.active = false })
}

// Advance moves the clock to now and fires due callbacks in registration order
// A timer that fell behind by several periods fires once per missed period
func (t *Timers) Advance(now time.Duration) {
	t.now = now
	entries := t.entries
	for _, e := range entries {
		for e.active && e.next <= now {
			e.next += e.period
			e.fn()
		}
	}

	live := t.entries[:0]
	for _, e := range t.entries {
		if e.active {
			live = append(live, e)
		}
	}
	clear(t.entries[len(live):])
	t.entries = live
}

// Count returns the number of active timers
func (t *Timers) Count() int {
	n := 0
	for _, e := range t.entries {
		if e.active {
			n++
		}
	}
	return n
}

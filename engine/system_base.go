package engine

import "github.com/lixenwraith/dodge/event"

// System is the minimal contract of everything a scene schedules
// Systems opt into phases by implementing Initializer, Updater or FixedUpdater
type System interface {
	Name() string
	Priority() int
}

// Initializer connects a system to signals, input or timers when its scene starts
// Returned handles are released when the scene stops
type Initializer interface {
	Init() []event.Disposable
}

// Updater runs once per rendered frame with the frame delta in seconds; cosmetic only
type Updater interface {
	Update(dt float64)
}

// FixedUpdater runs once per fixed step with the step delta in seconds
type FixedUpdater interface {
	FixedUpdate(dt float64)
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resources,
		Component: w.Components,
	}
}

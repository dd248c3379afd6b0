package input

import (
	"slices"

	"github.com/lixenwraith/dodge/event"
)

// Hub delivers pointer events to connected handlers, one list per kind
// Delivery is immediate on the caller's goroutine, in connection order
type Hub struct {
	handlers map[PointerKind][]*connection
}

type connection struct {
	fn     func(PointerEvent)
	active bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{handlers: make(map[PointerKind][]*connection)}
}

// Connect registers fn for kind; disposing the handle stops delivery
func (h *Hub) Connect(kind PointerKind, fn func(PointerEvent)) event.Disposable {
	c := &connection{fn: fn, active: true}
	h.handlers[kind] = append(h.handlers[kind], c)
	return event.DisposeFunc(func() {
		if !c.active {
			return
		}
		c.active = false
		h.handlers[kind] = slices.DeleteFunc(h.handlers[kind], func(x *connection) bool { return x == c })
	})
}

// Dispatch delivers ev to every handler connected for its kind
func (h *Hub) Dispatch(ev PointerEvent) {
	for _, c := range slices.Clone(h.handlers[ev.Kind]) {
		if c.active {
			c.fn(ev)
		}
	}
}

// Count returns the number of handlers for kind
func (h *Hub) Count(kind PointerKind) int {
	return len(h.handlers[kind])
}

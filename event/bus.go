package event

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
)

// Disposable is a handle that stops future delivery when disposed
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable
type DisposeFunc func()

func (f DisposeFunc) Dispose() { f() }

// Disposables collects handles owned by a system or scene and releases them together
type Disposables []Disposable

// Add appends handles, nil entries are ignored
func (d *Disposables) Add(items ...Disposable) {
	for _, it := range items {
		if it != nil {
			*d = append(*d, it)
		}
	}
}

// DisposeAll releases handles in reverse acquisition order and empties the set
func (d *Disposables) DisposeAll() {
	for i := len(*d) - 1; i >= 0; i-- {
		(*d)[i].Dispose()
	}
	*d = (*d)[:0]
}

// Subscription is a disposable registration of one handler on one signal
type Subscription struct {
	id        string
	eventType EventType
	handler   func(any)
	bus       *Bus
	active    bool
}

func (s *Subscription) ID() string           { return s.id }
func (s *Subscription) EventType() EventType { return s.eventType }
func (s *Subscription) IsActive() bool       { return s.active }

// Dispose removes the handler, idempotent
func (s *Subscription) Dispose() {
	if !s.active {
		return
	}
	s.active = false
	s.bus.remove(s)
}

// Observer sees every emission after typed handlers ran
type Observer func(et EventType, payload any)

// Bus is a synchronous signal dispatcher
// Handlers run on the emitting goroutine in registration order; no locking, the simulation is single-threaded
type Bus struct {
	handlers  map[EventType][]*Subscription
	observers []*Subscription
	emitted   map[EventType]uint64
}

// NewBus creates an empty bus
func NewBus() *Bus {
	InitRegistry()
	return &Bus{
		handlers: make(map[EventType][]*Subscription),
		emitted:  make(map[EventType]uint64),
	}
}

// Connect registers fn for sig and returns its disposable handle
// Panics if the catalog registers a different payload type for sig
func Connect[P any](b *Bus, sig Signal[P], fn func(P)) *Subscription {
	if t, ok := PayloadType(sig.Type); ok && t != reflect.TypeFor[P]() {
		panic(fmt.Sprintf("event: signal %s carries %s, handler expects %s", sig.Type, t, reflect.TypeFor[P]()))
	}
	s := &Subscription{
		id:        uuid.NewString(),
		eventType: sig.Type,
		handler:   func(p any) { fn(p.(P)) },
		bus:       b,
		active:    true,
	}
	b.handlers[sig.Type] = append(b.handlers[sig.Type], s)
	return s
}

// Emit delivers payload to every handler connected when emission starts
// A handler disposed by an earlier handler in the same emission is skipped
func Emit[P any](b *Bus, sig Signal[P], payload P) {
	b.emitted[sig.Type]++

	subs := b.handlers[sig.Type]
	if len(subs) > 0 {
		snapshot := slices.Clone(subs)
		for _, s := range snapshot {
			if s.active {
				s.handler(payload)
			}
		}
	}

	if len(b.observers) > 0 {
		for _, o := range slices.Clone(b.observers) {
			if o.active {
				o.handler(observed{sig.Type, payload})
			}
		}
	}
}

type observed struct {
	et      EventType
	payload any
}

// Observe registers fn for every signal; the session uses it for the debug signal log
func (b *Bus) Observe(fn Observer) *Subscription {
	s := &Subscription{
		id: uuid.NewString(),
		handler: func(p any) {
			o := p.(observed)
			fn(o.et, o.payload)
		},
		bus:    b,
		active: true,
	}
	b.observers = append(b.observers, s)
	return s
}

// HandlerCount returns the number of live handlers for et
func (b *Bus) HandlerCount(et EventType) int {
	return len(b.handlers[et])
}

// Emitted returns how many times et has been emitted on this bus
func (b *Bus) Emitted(et EventType) uint64 {
	return b.emitted[et]
}

func (b *Bus) remove(s *Subscription) {
	if s.eventType == 0 {
		b.observers = slices.DeleteFunc(b.observers, func(o *Subscription) bool { return o == s })
		return
	}
	subs := b.handlers[s.eventType]
	b.handlers[s.eventType] = slices.DeleteFunc(subs, func(o *Subscription) bool { return o == s })
}

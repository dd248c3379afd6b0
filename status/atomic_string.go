package status

import "sync/atomic"

// MaxStringLen caps string metrics so a log line stays one screen wide
const MaxStringLen = 20

// AtomicString is a string gauge; the zero value reads ""
type AtomicString struct {
	v atomic.Value
}

// Store keeps at most MaxStringLen bytes of val
func (s *AtomicString) Store(val string) {
	s.v.Store(val[:min(len(val), MaxStringLen)])
}

func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}

package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; fixed steps write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Fields renders every metric as a zap field, grouped by type and sorted by key
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		fields = append(fields, zap.Bool(key, ptr.Load()))
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		fields = append(fields, zap.Int64(key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		fields = append(fields, zap.Float64(key, ptr.Get()))
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		fields = append(fields, zap.String(key, ptr.Load()))
	})
	return fields
}

// Package status holds run metrics published by the frame loop.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names published by the driver
const (
	Frames      = "frames"
	Hits        = "hits"
	FrameTimeMs = "frame_ms"
	RenderMs    = "render_total_ms"
	Stop        = "stop"
)

// Registry is the metrics facade
// Writers cache metric pointers once and then store to atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot formats every metric as name=value, ints then floats then strings, each sorted
func (r *Registry) Snapshot() string {
	var parts []string
	r.Ints.Each(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	r.Strings.Each(func(k string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, v.Load()))
	})
	return strings.Join(parts, " ")
}

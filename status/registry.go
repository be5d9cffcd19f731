package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the frame loop
const (
	KeyFPS          = "frame.fps"
	KeyFrameTime    = "frame.avg_ms"
	KeyFrames       = "frame.count"
	KeyEntities     = "world.entities"
	KeyEnemies      = "world.enemies"
	KeyBullets      = "world.bullets"
	KeyScore        = "run.score"
	KeyScreen       = "run.screen"
	KeyRunID        = "run.id"
	KeyDone         = "run.done"
	KeyAudioEnabled = "audio.enabled"
)

// Registry groups typed metric maps
// Writers cache the pointer returned by Get once and store through it each frame;
// readers may run on any goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as text, keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(key string, v *atomic.Bool) {
		out[key] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = fmt.Sprintf("%.2f", v.Get())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out[key] = v.Load()
	})
	return out
}

package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyTicks       = "engine.ticks"
	KeySkipped     = "engine.skipped"
	KeyCoalesced   = "engine.coalesced"
	KeyHits        = "match.hits"
	KeyPoints      = "match.points"
	KeyMatches     = "match.completed"
	KeyPeakSpeed   = "ball.peak_speed"
	KeySpectators  = "spectator.connected"
	KeyFramesDrop  = "spectator.dropped"
	KeyAudioDrops  = "audio.dropped"
	KeyAudioPlayed = "audio.played"
)

// Registry is the central metrics facade
// Components cache pointers during construction and write atomics directly afterwards
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Export copies every metric into a plain map for reporting
func (r *Registry) Export() map[string]float64 {
	out := make(map[string]float64, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}

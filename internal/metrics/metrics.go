// Package metrics collects conversion statistics on a private Prometheus
// registry and writes them in the text exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "blsconv"

// Brick outcomes.
const (
	OutcomeConverted = "converted"
	OutcomeSpecial   = "special"
	OutcomeUnknown   = "unknown"
	OutcomeMalformed = "malformed"
)

// Metrics holds the conversion collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	bricks      *prometheus.CounterVec
	nodes       prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	duration    prometheus.Histogram
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bricks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bricks_total",
			Help:      "Bricks processed, by outcome.",
		}, []string{"outcome"}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_emitted_total",
			Help:      "Top-level scene nodes emitted.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_cache_hits_total",
			Help:      "Special-shape template requests served from the cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_cache_misses_total",
			Help:      "Special-shape templates generated.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Wall time of a conversion run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.bricks, m.nodes, m.cacheHits, m.cacheMisses, m.duration)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Brick records one processed brick and the nodes it produced.
func (m *Metrics) Brick(outcome string, nodes int) {
	if m == nil {
		return
	}
	m.bricks.WithLabelValues(outcome).Inc()
	m.nodes.Add(float64(nodes))
}

// Cache records template cache usage deltas.
func (m *Metrics) Cache(hits, misses int64) {
	if m == nil {
		return
	}
	m.cacheHits.Add(float64(hits))
	m.cacheMisses.Add(float64(misses))
}

// Observe records the duration of a run.
func (m *Metrics) Observe(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

// WriteTextfile writes every collected metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

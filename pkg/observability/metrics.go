package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements [StrategyHooks] and [CacheHooks] with Prometheus
// collectors.
type Metrics struct {
	applications *prometheus.CounterVec
	children     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	cacheEvents  *prometheus.CounterVec
	cacheBytes   prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tilings",
			Name:      "strategy_applications_total",
			Help:      "Strategy applications by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		children: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tilings",
			Name:      "strategy_children_total",
			Help:      "Child tilings produced by strategy.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tilings",
			Name:      "strategy_duration_seconds",
			Help:      "Time spent applying a strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tilings",
			Name:      "cache_events_total",
			Help:      "Cache hits, misses and writes by key type.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tilings",
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.applications, m.children, m.duration, m.cacheEvents, m.cacheBytes)
	}
	return m
}

// OnStrategyStart implements [StrategyHooks].
func (m *Metrics) OnStrategyStart(context.Context, string, int) {}

// OnStrategyComplete implements [StrategyHooks].
func (m *Metrics) OnStrategyComplete(_ context.Context, strategy string, children int, d time.Duration, err error) {
	outcome := "applied"
	switch {
	case err != nil:
		outcome = "error"
	case children == 0:
		outcome = "not_applicable"
	}
	m.applications.WithLabelValues(strategy, outcome).Inc()
	m.children.WithLabelValues(strategy).Add(float64(children))
	m.duration.WithLabelValues(strategy).Observe(d.Seconds())
}

// OnCacheHit implements [CacheHooks].
func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements [CacheHooks].
func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements [CacheHooks].
func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}

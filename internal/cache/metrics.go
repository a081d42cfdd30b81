package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonExpired = "expired"
	reasonRemoved = "removed"
)

var (
	// HitsTotal counts successful cache reads.
	HitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	// MissesTotal counts cache reads that found no live entry.
	MissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// EvictionsTotal counts entries dropped from the cache.
	// Labels: reason (expired, removed)
	EvictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache entries evicted",
		},
		[]string{"cache", "reason"},
	)

	// Entries tracks the number of entries currently held.
	Entries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cache entries",
		},
		[]string{"cache"},
	)
)

// storeMetrics binds the package collectors to one store name.
type storeMetrics struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	expired prometheus.Counter
	removed prometheus.Counter
	entries prometheus.Gauge
}

func newStoreMetrics(name string) *storeMetrics {
	return &storeMetrics{
		hits:    HitsTotal.WithLabelValues(name),
		misses:  MissesTotal.WithLabelValues(name),
		expired: EvictionsTotal.WithLabelValues(name, reasonExpired),
		removed: EvictionsTotal.WithLabelValues(name, reasonRemoved),
		entries: Entries.WithLabelValues(name),
	}
}

func (m *storeMetrics) hit()  { m.hits.Inc() }
func (m *storeMetrics) miss() { m.misses.Inc() }

func (m *storeMetrics) evicted(reason string) {
	m.evictedN(reason, 1)
}

func (m *storeMetrics) evictedN(reason string, n int) {
	switch reason {
	case reasonExpired:
		m.expired.Add(float64(n))
	case reasonRemoved:
		m.removed.Add(float64(n))
	}
}

func (m *storeMetrics) setEntries(n int) {
	m.entries.Set(float64(n))
}

// Package metrics implements ports.Metrics with Prometheus collectors on a
// private registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"go.trai.ch/gtprob/internal/core/domain"
)

const (
	namespace = "gtprob"
	subsystem = "evaluator"
)

// Metrics counts evaluator activity.
type Metrics struct {
	registry *prometheus.Registry

	evaluations    prometheus.Histogram
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	baseCases      prometheus.Counter
	decompositions prometheus.Counter
	terms          prometheus.Counter
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		evaluations: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of top-level topology evaluations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "Sub-topologies found in the probability store",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_misses_total",
			Help:      "Sub-topologies computed because they were not stored",
		}),
		baseCases: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "base_cases_total",
			Help:      "Simple topologies resolved by the closed form",
		}),
		decompositions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decompositions_total",
			Help:      "Topologies split into simpler topologies",
		}),
		terms: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decomposition_terms_total",
			Help:      "Terms produced by all decompositions",
		}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// CacheHit records a sub-topology found in the store.
func (m *Metrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss records a sub-topology that had to be computed.
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }

// BaseCase records a closed form evaluation.
func (m *Metrics) BaseCase() { m.baseCases.Inc() }

// Decomposition records a topology split into terms.
func (m *Metrics) Decomposition(terms int) {
	m.decompositions.Inc()
	m.terms.Add(float64(terms))
}

// ObserveEvaluation records the duration of a top-level evaluation.
func (m *Metrics) ObserveEvaluation(d time.Duration) {
	m.evaluations.Observe(d.Seconds())
}

// Snapshot returns the totals recorded so far.
func (m *Metrics) Snapshot() domain.Stats {
	return domain.Stats{
		Evaluations:       histogram(m.evaluations).GetSampleCount(),
		EvaluationSeconds: histogram(m.evaluations).GetSampleSum(),
		CacheHits:         counter(m.cacheHits),
		CacheMisses:       counter(m.cacheMisses),
		BaseCases:         counter(m.baseCases),
		Decompositions:    counter(m.decompositions),
		Terms:             counter(m.terms),
	}
}

func counter(c prometheus.Counter) uint64 {
	var out dto.Metric
	if err := c.Write(&out); err != nil {
		return 0
	}
	return uint64(out.GetCounter().GetValue())
}

func histogram(h prometheus.Histogram) *dto.Histogram {
	var out dto.Metric
	if err := h.Write(&out); err != nil {
		return &dto.Histogram{}
	}
	return out.GetHistogram()
}

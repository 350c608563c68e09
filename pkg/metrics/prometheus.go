// Package metrics provides Prometheus metrics for SAW evaluations.
package metrics

import (
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for evaluations_total.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Default bucket layouts. Evaluations are in-memory and usually finish well
// under a millisecond.
var (
	defaultDurationBuckets = []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100}
	defaultSizeBuckets     = prometheus.ExponentialBuckets(2, 2, 10)
)

// Manager owns the Prometheus collectors for the evaluation service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          atomic.Bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	evaluations        *prometheus.CounterVec
	evaluationErrors   *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	alternatives       prometheus.Histogram
	criteria           prometheus.Histogram
	batchSize          prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "saw",
		subsystem:        "engine",
		histogramBuckets: defaultDurationBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}
	m.enabled.Store(true)

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates and registers the collectors.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluations_total",
		Help:        "Total number of decision problems evaluated, by outcome",
		ConstLabels: labels,
	}, []string{"outcome"})

	m.evaluationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_errors_total",
		Help:        "Total number of rejected decision problems, by error kind",
		ConstLabels: labels,
	}, []string{"kind"})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_duration_milliseconds",
		Help:        "Time spent validating, normalizing, aggregating and ranking one problem",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.alternatives = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "alternatives_per_problem",
		Help:        "Number of alternatives (matrix rows) per evaluated problem",
		Buckets:     defaultSizeBuckets,
		ConstLabels: labels,
	})

	m.criteria = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "criteria_per_problem",
		Help:        "Number of criteria (matrix columns) per evaluated problem",
		Buckets:     defaultSizeBuckets,
		ConstLabels: labels,
	})

	m.batchSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "batch_size",
		Help:        "Number of problems in the most recent batch evaluation",
		ConstLabels: labels,
	})
}

// RecordEvaluation counts one evaluation and observes its duration.
func (m *Manager) RecordEvaluation(outcome string, durationMs float64) {
	if !m.enabled.Load() {
		return
	}
	m.evaluations.WithLabelValues(outcome).Inc()
	m.evaluationDuration.Observe(durationMs)
}

// RecordError counts a rejected problem under its error kind.
func (m *Manager) RecordError(kind string) {
	if !m.enabled.Load() {
		return
	}
	m.evaluationErrors.WithLabelValues(kind).Inc()
}

// ObserveProblemSize records the dimensions of an accepted problem.
func (m *Manager) ObserveProblemSize(alternatives, criteria int) {
	if !m.enabled.Load() {
		return
	}
	m.alternatives.Observe(float64(alternatives))
	m.criteria.Observe(float64(criteria))
}

// UpdateBatchSize sets the size of the latest batch.
func (m *Manager) UpdateBatchSize(size int) {
	if !m.enabled.Load() {
		return
	}
	m.batchSize.Set(float64(size))
}

// SetEnabled turns recording on or off.
func (m *Manager) SetEnabled(enabled bool) { m.enabled.Store(enabled) }

// Default returns the process-wide manager registered on GetRegistry.
func Default() *Manager {
	return globalManager
}

// SetEnabled turns recording on the global manager on or off.
func SetEnabled(enabled bool) {
	globalManager.SetEnabled(enabled)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the global registry to path in the Prometheus text
// exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}

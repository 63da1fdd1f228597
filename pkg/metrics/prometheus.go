// Package metrics provides Prometheus metrics for the SkillSwap core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the SkillSwap service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Store Metrics - one time series per (store, operation)
	storeOps       *prometheus.CounterVec
	storeOpErrors  *prometheus.CounterVec
	storeOpLatency *prometheus.HistogramVec
	entityCount    *prometheus.GaugeVec

	// Derived View Metrics
	viewBuilds       *prometheus.CounterVec
	viewBuildLatency *prometheus.HistogramVec
	viewCacheHits    *prometheus.CounterVec
	viewCacheMisses  *prometheus.CounterVec

	// Workflow Metrics
	workflowOutcomes *prometheus.CounterVec

	// Matching Metrics
	matchScoreLatency prometheus.Histogram

	// Notice Queue Metrics
	noticesPublished prometheus.Counter
	noticesDropped   prometheus.Counter
	noticeQueueSize  prometheus.Gauge
}

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
		namespace:        "skillswap",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.storeOps = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_operations_total",
		Help:      "Total store operations by store and operation kind",
	}, []string{"store", "op"})

	m.storeOpErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_operation_errors_total",
		Help:      "Total failed store operations by store and operation kind",
	}, []string{"store", "op"})

	m.storeOpLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_operation_latency_milliseconds",
		Help:      "Store operation latency in milliseconds, simulated window included",
		Buckets:   []float64{1, 50, 100, 200, 250, 300, 350, 400, 500, 1000},
	}, []string{"store", "op"})

	m.entityCount = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entities",
		Help:      "Current number of records per store",
	}, []string{"store"})

	m.viewBuilds = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_builds_total",
		Help:      "Total derived-view computations by view",
	}, []string{"view"})

	m.viewBuildLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_build_latency_milliseconds",
		Help:      "Derived-view computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"view"})

	m.viewCacheHits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_hits_total",
		Help:      "Derived-view cache hits by view",
	}, []string{"view"})

	m.viewCacheMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_misses_total",
		Help:      "Derived-view cache misses by view",
	}, []string{"view"})

	m.workflowOutcomes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "workflow_outcomes_total",
		Help:      "Workflow completions by workflow and outcome (success or failure)",
	}, []string{"workflow", "outcome"})

	m.matchScoreLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_score_latency_milliseconds",
		Help:      "Compatibility scoring latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.noticesPublished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notices_published_total",
		Help:      "Total user-facing notices published",
	})

	m.noticesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notices_dropped_total",
		Help:      "Total notices dropped because the queue was full or closed",
	})

	m.noticeQueueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "notice_queue_size",
		Help:      "Current number of undelivered notices",
	})
}

// RecordStoreOp increments the operation counter for a store.
func RecordStoreOp(store, op string) {
	globalManager.storeOps.WithLabelValues(store, op).Inc()
}

// RecordStoreOpError increments the failed-operation counter for a store.
func RecordStoreOpError(store, op string) {
	globalManager.storeOpErrors.WithLabelValues(store, op).Inc()
}

// RecordStoreOpLatency records a store operation latency in milliseconds.
func RecordStoreOpLatency(store, op string, latencyMs float64) {
	globalManager.storeOpLatency.WithLabelValues(store, op).Observe(latencyMs)
}

// UpdateEntityCount sets the current record count for a store.
func UpdateEntityCount(store string, count int) {
	globalManager.entityCount.WithLabelValues(store).Set(float64(count))
}

// RecordViewBuild counts one derived-view computation and its latency.
func RecordViewBuild(view string, latencyMs float64) {
	globalManager.viewBuilds.WithLabelValues(view).Inc()
	globalManager.viewBuildLatency.WithLabelValues(view).Observe(latencyMs)
}

// RecordViewCacheHit increments the cache-hit counter for a view.
func RecordViewCacheHit(view string) {
	globalManager.viewCacheHits.WithLabelValues(view).Inc()
}

// RecordViewCacheMiss increments the cache-miss counter for a view.
func RecordViewCacheMiss(view string) {
	globalManager.viewCacheMisses.WithLabelValues(view).Inc()
}

// RecordWorkflowOutcome counts a workflow completion.
func RecordWorkflowOutcome(workflow, outcome string) {
	globalManager.workflowOutcomes.WithLabelValues(workflow, outcome).Inc()
}

// RecordMatchScoreLatency records compatibility-scoring latency in milliseconds.
func RecordMatchScoreLatency(latencyMs float64) {
	globalManager.matchScoreLatency.Observe(latencyMs)
}

// RecordNoticePublished increments the published-notice counter.
func RecordNoticePublished() {
	globalManager.noticesPublished.Inc()
}

// RecordNoticeDropped increments the dropped-notice counter.
func RecordNoticeDropped() {
	globalManager.noticesDropped.Inc()
}

// UpdateNoticeQueueSize sets the current undelivered-notice count.
func UpdateNoticeQueueSize(size int) {
	globalManager.noticeQueueSize.Set(float64(size))
}

// GetRegistry returns the custom registry used by the global manager so the
// process can expose it over /metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

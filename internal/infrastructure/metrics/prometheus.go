// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "liveshows"

var (
	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: memory, redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// DependencyCallsTotal tracks calls to external dependencies.
	// Labels:
	//   - dependency: e.g. YouTube.PlayListItemsApi
	//   - operation: e.g. List
	//   - success: true, false
	DependencyCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dependency_calls_total",
			Help:      "Total number of external dependency calls",
		},
		[]string{"dependency", "operation", "success"},
	)

	// DependencyCallDuration observes external dependency call latency.
	DependencyCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dependency_call_duration_seconds",
			Help:      "Duration of external dependency calls",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"dependency", "operation"},
	)

	// ShowRetrievalsTotal tracks how show lists were served.
	// Labels:
	//   - mode: fallback, bypass, cached
	ShowRetrievalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "show_retrievals_total",
			Help:      "Total number of show list retrievals",
		},
		[]string{"mode"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

// Retrieval mode constants.
const (
	RetrievalFallback = "fallback"
	RetrievalBypass   = "bypass"
	RetrievalCached   = "cached"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)

// DependencyTracker records dependency observations as Prometheus metrics.
// It satisfies repository.DependencyTracker.
type DependencyTracker struct{}

// TrackDependency increments the call counter and observes the duration.
func (DependencyTracker) TrackDependency(name, operation string, _ time.Time, duration time.Duration, success bool) {
	DependencyCallsTotal.WithLabelValues(name, operation, strconv.FormatBool(success)).Inc()
	DependencyCallDuration.WithLabelValues(name, operation).Observe(duration.Seconds())
}

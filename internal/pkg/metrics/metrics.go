package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Inventory command metrics
	InventoryOperationsCounter prometheus.CounterVec
	TxnAbortRetriesCounter     prometheus.Counter

	// Snapshot subscription metrics
	StreamSubscribersGauge prometheus.GaugeVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics. The prefix keeps metric names
// distinct when several services share a scrape target.
func InitMetrics(prefix string) {
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	InventoryOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_inventory_operations_total",
			Help: "Total number of inventory commands by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	TxnAbortRetriesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_txn_abort_retries_total",
			Help: "Total number of commands rejected after transaction aborts",
		},
	)

	StreamSubscribersGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_stream_subscribers",
			Help: "Current number of snapshot stream subscribers",
		},
		[]string{"stream"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a
// database operation.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordInventoryOperation increments the counter for inventory commands.
func RecordInventoryOperation(operation, outcome string) {
	InventoryOperationsCounter.WithLabelValues(operation, outcome).Inc()
}

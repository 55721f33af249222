// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultServiceName labels collectors until MustRegister names the service.
const DefaultServiceName = "promopush"

// Push results as recorded in PushTokensTotal.
const (
	ResultDelivered    = "delivered"
	ResultFailed       = "failed"
	ResultUnregistered = "unregistered"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	pushTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_tokens_total",
			Help: "Device tokens handed to the push provider, by outcome.",
		},
		[]string{"service", "mode", "result"},
	)

	pushBatchDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_batch_duration_seconds",
			Help:    "Duration of push provider batch calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "mode"},
	)

	tokensPrunedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tokens_pruned_total",
			Help: "Device tokens removed after the push provider rejected them.",
		},
		[]string{"service"},
	)
)

// Collectors curried with the service label.
var (
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec
	PushTokensTotal            *prometheus.CounterVec
	PushBatchDurationSeconds   *prometheus.HistogramVec
	TokensPrunedTotal          *prometheus.CounterVec
)

var registerOnce sync.Once

func init() {
	curry(DefaultServiceName)
}

func curry(serviceName string) {
	labels := prometheus.Labels{"service": serviceName}

	HTTPRequestsTotal = httpRequestsTotal.MustCurryWith(labels)
	HTTPRequestDurationSeconds = httpRequestDurationSeconds.MustCurryWith(labels).(*prometheus.HistogramVec)
	PushTokensTotal = pushTokensTotal.MustCurryWith(labels)
	PushBatchDurationSeconds = pushBatchDurationSeconds.MustCurryWith(labels).(*prometheus.HistogramVec)
	TokensPrunedTotal = tokensPrunedTotal.MustCurryWith(labels)
}

// MustRegister labels every collector with the service name and registers
// them with the default registry. Later calls are no-ops.
func MustRegister(serviceName string) {
	registerOnce.Do(func() {
		if serviceName != "" {
			curry(serviceName)
		}

		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDurationSeconds,
			pushTokensTotal,
			pushBatchDurationSeconds,
			tokensPrunedTotal,
		)
	})
}

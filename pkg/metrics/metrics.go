// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EmailsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightdesk_emails_processed_total",
			Help: "Emails that completed the workflow, by classification and final status",
		},
		[]string{"classification", "status"},
	)

	HandlerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freightdesk_handler_duration_seconds",
			Help:    "Category handler execution time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"category", "status"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightdesk_model_calls_total",
			Help: "Language model invocations by provider and outcome",
		},
		[]string{"provider", "status"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freightdesk_model_call_duration_seconds",
			Help:    "Language model invocation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~50s
		},
		[]string{"provider"},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightdesk_persistence_failures_total",
			Help: "Non-fatal database writes that failed during the workflow",
		},
		[]string{"table"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freightdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~16s
		},
		[]string{"method", "pattern", "status"},
	)
)

// Outcome returns the status label for a success flag.
func Outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func RecordEmailProcessed(classification, status string) {
	EmailsProcessed.WithLabelValues(classification, status).Inc()
}

func RecordHandler(category string, success bool, d time.Duration) {
	HandlerDuration.WithLabelValues(category, Outcome(success)).Observe(d.Seconds())
}

func RecordModelCall(provider string, success bool, d time.Duration) {
	ModelCalls.WithLabelValues(provider, Outcome(success)).Inc()
	ModelCallDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func RecordPersistenceFailure(table string) {
	PersistenceFailures.WithLabelValues(table).Inc()
}

func RecordHTTPRequest(method, pattern, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, pattern, status).Observe(d.Seconds())
}

package metrics

import (
	"regexp"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scheme_console"

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// Metrics groups every collector the service exports. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Scheme metrics
	FinalizeCounter   *prometheus.CounterVec
	ActivateCounter   *prometheus.CounterVec
	ResolveCounter    *prometheus.CounterVec
	ValidationFailure *prometheus.CounterVec

	// Catalog metrics
	PackSizeCacheCounter *prometheus.CounterVec

	// Repository metrics
	DBOperationHistogram *prometheus.HistogramVec
	DBRetryCounter       *prometheus.CounterVec

	// Request metrics
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FinalizeCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheme_finalize_total",
				Help:      "Total number of scheme finalize attempts by outcome",
			},
			[]string{"outcome"},
		),
		ActivateCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheme_activate_total",
				Help:      "Total number of scheme activations by outcome",
			},
			[]string{"outcome"},
		),
		ResolveCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheme_resolve_total",
				Help:      "Total number of effective value resolutions by source",
			},
			[]string{"source"},
		),
		ValidationFailure: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheme_validation_errors_total",
				Help:      "Total number of field validation errors by field",
			},
			[]string{"field"},
		),
		PackSizeCacheCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pack_size_cache_total",
				Help:      "Pack size cache lookups by result",
			},
			[]string{"result"},
		),
		DBOperationHistogram: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_operation_duration_seconds",
				Help:      "Duration of repository operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DBRetryCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_transaction_retries_total",
				Help:      "Transactions retried after a serialization failure or deadlock",
			},
			[]string{"operation"},
		),
		RequestDurationHistogram: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		APIRequestCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "path"},
		),
		APIErrorCounter: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_errors_total",
				Help:      "Total number of API errors",
			},
			[]string{"method", "path", "status"},
		),
	}
}

func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

func (m *Metrics) RecordFinalize(outcome string) {
	if m == nil {
		return
	}
	m.FinalizeCounter.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordActivate(outcome string) {
	if m == nil {
		return
	}
	m.ActivateCounter.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordResolve(source string) {
	if m == nil {
		return
	}
	m.ResolveCounter.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordValidationError(field string) {
	if m == nil {
		return
	}
	m.ValidationFailure.WithLabelValues(indexPattern.ReplaceAllString(field, "[]")).Inc()
}

func (m *Metrics) RecordPackSizeCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PackSizeCacheCounter.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordDBRetry(operation string) {
	if m == nil {
		return
	}
	m.DBRetryCounter.WithLabelValues(operation).Inc()
}

// TrackDBOperation returns a function that observes the duration since start.
func (m *Metrics) TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		if m == nil {
			return
		}
		m.DBOperationHistogram.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// Package metrics exports Prometheus collectors for HTTP traffic and the
// stock worker pool. Every method is safe on a nil receiver, so callers that
// run without a registry need no checks.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stock job results.
const (
	ResultOK    = "ok"
	ResultRetry = "retry"
	ResultDLQ   = "dlq"
)

type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request collectors on reg. A nil reg returns
// a no-op instance.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return nil
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

// Observe records one request. route is the matched pattern, never the raw
// path, to keep label cardinality bounded.
func (m *HTTPMetrics) Observe(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

type StockJobMetrics struct {
	results  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewStockJobMetrics(reg prometheus.Registerer) *StockJobMetrics {
	if reg == nil {
		return nil
	}
	results := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_jobs_total",
		Help: "Stock jobs by result (ok, retry, dlq).",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "stock_job_duration_seconds",
		Help:    "Time to apply one stock job, retries included.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(results, duration)
	return &StockJobMetrics{results: results, duration: duration}
}

func (m *StockJobMetrics) Inc(result string) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(result).Inc()
}

func (m *StockJobMetrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

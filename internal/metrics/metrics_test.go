package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe("GET", "/productos/:id", 200, 10*time.Millisecond)
	m.Observe("GET", "/productos/:id", 200, 20*time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/productos/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	n, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStockJobMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStockJobMetrics(reg)

	m.Inc(ResultOK)
	m.Inc(ResultRetry)
	m.Inc(ResultRetry)
	m.ObserveDuration(time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.results.WithLabelValues(ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.results.WithLabelValues(ResultRetry)))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var h *HTTPMetrics = NewHTTPMetrics(nil)
	var s *StockJobMetrics = NewStockJobMetrics(nil)
	assert.NotPanics(t, func() {
		h.Observe("GET", "/", 200, time.Millisecond)
		s.Inc(ResultDLQ)
		s.ObserveDuration(time.Millisecond)
	})
}

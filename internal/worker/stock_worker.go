package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/metrics"
	"github.com/gleydi12/web-inventario/internal/service"

	"github.com/rs/zerolog/log"
)

const maxAttempts = 3

// StockApplier applies one queued stock change. service.InventarioService
// satisfies it.
type StockApplier interface {
	AplicarAjuste(ctx context.Context, a dto.AjusteStock) error
}

// Handlers routes jobs by type.
type Handlers struct {
	Stock   StockApplier
	metrics *metrics.StockJobMetrics

	// backoff returns the wait before retry n (n >= 1).
	backoff func(n int) time.Duration
}

// NewHandlers builds the job handlers. m may be nil.
func NewHandlers(stock StockApplier, m *metrics.StockJobMetrics) *Handlers {
	return &Handlers{Stock: stock, metrics: m, backoff: exponential}
}

// Handle runs job, retrying transient failures with exponential backoff.
// It returns the number of attempts made and the last error when the job
// should go to the dead letter queue.
func (h *Handlers) Handle(ctx context.Context, job Job) (int, error) {
	start := time.Now()
	attempts, err := h.handle(ctx, job)
	h.metrics.ObserveDuration(time.Since(start))
	if err != nil {
		h.metrics.Inc(metrics.ResultDLQ)
	} else {
		h.metrics.Inc(metrics.ResultOK)
	}
	return attempts, err
}

func (h *Handlers) handle(ctx context.Context, job Job) (int, error) {
	switch job.Type {
	case jobStock:
		var a dto.AjusteStock
		if err := json.Unmarshal(job.Payload, &a); err != nil {
			return 0, fmt.Errorf("stock payload: %w", err)
		}
		return h.withRetry(ctx, func() error { return h.Stock.AplicarAjuste(ctx, a) }, func(err error, attempt int) {
			log.Warn().Err(err).
				Uint("producto_id", a.ProductoID).
				Int("delta", a.Delta).
				Int("attempt", attempt).
				Msg("stock_worker: ajuste fallido, reintentando")
		})
	default:
		return 0, fmt.Errorf("tipo de job desconocido %q", job.Type)
	}
}

// withRetry calls fn up to maxAttempts times. Permanent errors (the product
// no longer exists) stop at the first attempt.
func (h *Handlers) withRetry(ctx context.Context, fn func() error, onRetry func(error, int)) (int, error) {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			h.metrics.Inc(metrics.ResultRetry)
			onRetry(lastErr, i)
			select {
			case <-ctx.Done():
				return i, ctx.Err()
			case <-time.After(h.backoff(i)):
			}
		}
		lastErr = fn()
		if lastErr == nil {
			return i + 1, nil
		}
		if errors.Is(lastErr, service.ErrNoEncontrado) {
			return i + 1, lastErr
		}
	}
	return maxAttempts, lastErr
}

// exponential: 1s, 2s …
func exponential(n int) time.Duration {
	return time.Duration(1<<uint(n-1)) * time.Second
}

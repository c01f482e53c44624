package middleware

import (
	"time"

	"github.com/gleydi12/web-inventario/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request on m, labelled by the matched route.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Observe(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

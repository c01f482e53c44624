package handler

import (
	"net/http"
	"strconv"

	"github.com/gleydi12/web-inventario/internal/apierror"
	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const maxRequeue = 1000

// DLQHandler exposes the stock dead-letter queue to operators.
type DLQHandler struct{ rdb *redis.Client }

func NewDLQHandler(rdb *redis.Client) *DLQHandler {
	return &DLQHandler{rdb: rdb}
}

// Pendientes godoc
// @Summary Trabajos de stock en la cola de fallidos
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DLQResponse
// @Security BearerAuth
// @Router /admin/dlq [get]
func (h *DLQHandler) Pendientes(c *gin.Context) {
	n, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueStock)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.DLQResponse{Queue: worker.QueueStock, Pendientes: n})
}

// Reencolar godoc
// @Summary Devolver trabajos fallidos a la cola de stock
// @Tags admin
// @Produce json
// @Param n query int false "Máximo de trabajos (por defecto 100)"
// @Success 200 {object} dto.RequeueResponse
// @Failure 400 {object} apierror.APIError
// @Security BearerAuth
// @Router /admin/dlq/requeue [post]
func (h *DLQHandler) Reencolar(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "100"))
	if err != nil || n < 1 || n > maxRequeue {
		c.JSON(http.StatusBadRequest, apierror.Newf("n debe estar entre 1 y %d", maxRequeue))
		return
	}
	ctx := c.Request.Context()
	moved, err := worker.Requeue(ctx, h.rdb, worker.QueueStock, n)
	if err != nil {
		_ = c.Error(err)
		return
	}
	left, err := worker.DLQLength(ctx, h.rdb, worker.QueueStock)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.RequeueResponse{Queue: worker.QueueStock, Reencolados: moved, Pendientes: left})
}

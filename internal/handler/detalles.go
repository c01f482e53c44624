package handler

import (
	"net/http"

	"github.com/gleydi12/web-inventario/internal/apierror"
	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Detalles de compra ───────────────────────────────────────────────────────

type DetallesCompraHandler struct{ svc service.DetalleCompraService }

func NewDetallesCompraHandler(svc service.DetalleCompraService) *DetallesCompraHandler {
	return &DetallesCompraHandler{svc: svc}
}

// Crear godoc
// @Summary Agregar línea a una compra
// @Description precioUnitario toma el precio_venta del producto si se omite; subtotal se calcula en el servidor.
// @Tags detalles-compras
// @Accept json
// @Produce json
// @Param body body dto.DetalleCompraRequest true "Línea"
// @Success 201 {object} dto.DetalleCompraResponse
// @Failure 422 {object} apierror.APIError
// @Security BearerAuth
// @Router /detalles-compras [post]
func (h *DetallesCompraHandler) Crear(c *gin.Context) {
	var req dto.DetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /detalles-compras?compraId=
func (h *DetallesCompraHandler) Listar(c *gin.Context) {
	var f dto.DetalleFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f.CompraID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesCompraHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesCompraHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesCompraHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, id)
}

// ── Detalles de venta ────────────────────────────────────────────────────────

type DetallesVentaHandler struct{ svc service.DetalleVentaService }

func NewDetallesVentaHandler(svc service.DetalleVentaService) *DetallesVentaHandler {
	return &DetallesVentaHandler{svc: svc}
}

func (h *DetallesVentaHandler) Crear(c *gin.Context) {
	var req dto.DetalleVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /detalles-ventas?ventaId=
func (h *DetallesVentaHandler) Listar(c *gin.Context) {
	var f dto.DetalleFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f.VentaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesVentaHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesVentaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DetalleVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetallesVentaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, id)
}

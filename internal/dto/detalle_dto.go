package dto

// LineaRequest is the product line shared by purchase and sale details.
// A nil PrecioUnitario takes the product's precio_venta. Subtotal is always
// computed server-side.
type LineaRequest struct {
	ProductoID     uint     `json:"productoId"     validate:"required"`
	Cantidad       int      `json:"cantidad"       validate:"required,min=1"`
	PrecioUnitario *float64 `json:"precioUnitario" validate:"omitempty,min=0"`
}

type DetalleCompraRequest struct {
	CompraID uint `json:"compraId" validate:"required"`
	LineaRequest
}

type DetalleVentaRequest struct {
	VentaID uint `json:"ventaId" validate:"required"`
	LineaRequest
}

// DetalleFilter binds ?compraId= / ?ventaId= on list endpoints.
type DetalleFilter struct {
	CompraID uint `form:"compraId"`
	VentaID  uint `form:"ventaId"`
}

type LineaResponse struct {
	ProductoID     uint    `json:"productoId"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
}

type DetalleCompraResponse struct {
	ID       uint `json:"id"`
	CompraID uint `json:"compraId"`
	LineaResponse
}

type DetalleVentaResponse struct {
	ID      uint `json:"id"`
	VentaID uint `json:"ventaId"`
	LineaResponse
}

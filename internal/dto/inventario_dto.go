package dto

import "time"

const (
	MovimientoCompra = "compra"
	MovimientoVenta  = "venta"
	MovimientoAjuste = "ajuste"
)

// AjusteStock is one stock change, applied inline or queued for the worker
// pool. Delta is positive for stock in and negative for stock out.
type AjusteStock struct {
	ProductoID   uint   `json:"producto_id"`
	Delta        int    `json:"delta"`
	Tipo         string `json:"tipo"`
	Motivo       string `json:"motivo"`
	ReferenciaID *uint  `json:"referencia_id,omitempty"`
}

type MovimientoStockResponse struct {
	ID            uint      `json:"id"`
	ProductoID    uint      `json:"productoId"`
	Tipo          string    `json:"tipo"`
	Cantidad      int       `json:"cantidad"`
	StockAnterior int       `json:"stockAnterior"`
	StockNuevo    int       `json:"stockNuevo"`
	Motivo        string    `json:"motivo"`
	ReferenciaID  *uint     `json:"referenciaId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

package dto

import "github.com/shopspring/decimal"

// ─── Compras ─────────────────────────────────────────────────────────────────

type CompraRequest struct {
	ProveedorID uint   `json:"proveedorId" validate:"required"`
	Fecha       string `json:"fecha"       validate:"required,datetime=2006-01-02"`
}

type CompraResponse struct {
	ID          uint   `json:"id"`
	ProveedorID uint   `json:"proveedorId"`
	Fecha       string `json:"fecha"`
}

// ─── Ventas ──────────────────────────────────────────────────────────────────

type VentaRequest struct {
	Fecha string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

type VentaResponse struct {
	ID    uint   `json:"id"`
	Fecha string `json:"fecha"`
}

// TotalResponse is the sum of a purchase's or sale's line subtotals.
type TotalResponse struct {
	ID     uint            `json:"id"`
	Lineas int             `json:"lineas"`
	Total  decimal.Decimal `json:"total"`
}

package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductoRequest is the body of POST and PUT /productos. Ids never travel in
// the body. Stock has no lower bound: sales may take it below zero.
type ProductoRequest struct {
	Nombre      string  `json:"nombre"       validate:"required,max=120"`
	Descripcion string  `json:"descripcion"  validate:"max=500"`
	PrecioVenta float64 `json:"precio_venta" validate:"min=0"`
	Stock       int     `json:"stock"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	PrecioVenta float64 `json:"precio_venta"`
	Stock       int     `json:"stock"`
}

// DeleteResponse acknowledges every DELETE.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

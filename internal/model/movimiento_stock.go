package model

import "time"

// MovimientoStock registra cada cambio de stock en un producto.
// Se crea al registrar, modificar o eliminar un detalle de compra o venta,
// y al corregir el stock de un producto a mano.
type MovimientoStock struct {
	ID            uint   `gorm:"primaryKey"     json:"id,omitempty"`
	ProductoID    uint   `gorm:"not null;index" json:"productoId"`
	Tipo          string `gorm:"not null"       json:"tipo"`     // "compra" | "venta" | "ajuste"
	Cantidad      int    `gorm:"not null"       json:"cantidad"` // positive = entrada, negative = salida
	StockAnterior int    `gorm:"not null"       json:"stockAnterior"`
	StockNuevo    int    `gorm:"not null"       json:"stockNuevo"`
	Motivo        string `json:"motivo"`
	// ReferenciaID is the detalle id that caused the movement.
	ReferenciaID *uint     `json:"referenciaId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }

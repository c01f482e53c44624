package model

import "time"

// Producto is a catalog item. PrecioVenta is the price used to auto-fill
// purchase and sale lines.
type Producto struct {
	ID          uint      `gorm:"primaryKey"         json:"id,omitempty"`
	Nombre      string    `gorm:"index;not null"     json:"nombre"`
	Descripcion string    `json:"descripcion"`
	PrecioVenta float64   `gorm:"not null;default:0" json:"precio_venta"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (p Producto) GetID() uint { return p.ID }

func (p Producto) WithID(id uint) Producto {
	p.ID = id
	return p
}

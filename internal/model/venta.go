package model

import "time"

// Venta is a sale header; its lines live in DetalleVenta.
type Venta struct {
	ID        uint      `gorm:"primaryKey"                json:"id,omitempty"`
	Fecha     string    `gorm:"type:varchar(10);not null" json:"fecha"` // YYYY-MM-DD
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (v Venta) GetID() uint { return v.ID }

func (v Venta) WithID(id uint) Venta {
	v.ID = id
	return v
}

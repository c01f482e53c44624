package model

import "time"

// Proveedor represents a supplier.
type Proveedor struct {
	ID        uint      `gorm:"primaryKey"     json:"id,omitempty"`
	Nombre    string    `gorm:"index;not null" json:"nombre"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Proveedor) TableName() string { return "proveedores" }

func (p Proveedor) GetID() uint { return p.ID }

func (p Proveedor) WithID(id uint) Proveedor {
	p.ID = id
	return p
}

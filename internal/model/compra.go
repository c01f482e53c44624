package model

import "time"

// Compra is a purchase from a supplier. The supplier relation is always the
// numeric proveedor id, never a free-text name.
type Compra struct {
	ID          uint      `gorm:"primaryKey"           json:"id,omitempty"`
	ProveedorID uint      `gorm:"not null;index"       json:"proveedorId"`
	Fecha       string    `gorm:"type:varchar(10);not null" json:"fecha"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID" json:"-"`
}

func (c Compra) GetID() uint { return c.ID }

func (c Compra) WithID(id uint) Compra {
	c.ID = id
	return c
}

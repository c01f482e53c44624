package model

import "time"

// Linea holds the product line shared by purchase and sale details.
// Subtotal must equal Cantidad * PrecioUnitario after every commit.
type Linea struct {
	ProductoID     uint    `gorm:"not null;index"     json:"productoId"`
	Cantidad       int     `gorm:"not null"           json:"cantidad"`
	PrecioUnitario float64 `gorm:"not null;default:0" json:"precioUnitario"`
	Subtotal       float64 `gorm:"not null;default:0" json:"subtotal"`
}

// DetalleCompra is one line of a purchase.
type DetalleCompra struct {
	ID       uint `gorm:"primaryKey"     json:"id,omitempty"`
	CompraID uint `gorm:"not null;index" json:"compraId"`
	Linea
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

func (DetalleCompra) TableName() string { return "detalles_compra" }

func (d DetalleCompra) GetID() uint { return d.ID }

func (d DetalleCompra) WithID(id uint) DetalleCompra {
	d.ID = id
	return d
}

func (d DetalleCompra) GetLinea() Linea { return d.Linea }

func (d DetalleCompra) WithLinea(l Linea) DetalleCompra {
	d.Linea = l
	return d
}

// DetalleVenta is one line of a sale.
type DetalleVenta struct {
	ID      uint `gorm:"primaryKey"     json:"id,omitempty"`
	VentaID uint `gorm:"not null;index" json:"ventaId"`
	Linea
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"-"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }

func (d DetalleVenta) GetID() uint { return d.ID }

func (d DetalleVenta) WithID(id uint) DetalleVenta {
	d.ID = id
	return d
}

func (d DetalleVenta) GetLinea() Linea { return d.Linea }

func (d DetalleVenta) WithLinea(l Linea) DetalleVenta {
	d.Linea = l
	return d
}

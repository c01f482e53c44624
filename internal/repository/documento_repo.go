package repository

import (
	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/gorm"
)

// Purchases and sales are plain headers; their lines live in the detalle
// repositories.

type CompraRepository interface {
	Repo[model.Compra]
}

func NewCompraRepository(db *gorm.DB) CompraRepository {
	return newGormRepo[model.Compra](db)
}

type VentaRepository interface {
	Repo[model.Venta]
}

func NewVentaRepository(db *gorm.DB) VentaRepository {
	return newGormRepo[model.Venta](db)
}

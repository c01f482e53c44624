package repository

import (
	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/gorm"
)

type DetalleCompraRepository interface {
	Repo[model.DetalleCompra]
}

func NewDetalleCompraRepository(db *gorm.DB) DetalleCompraRepository {
	return newGormRepo[model.DetalleCompra](db)
}

type DetalleVentaRepository interface {
	Repo[model.DetalleVenta]
}

func NewDetalleVentaRepository(db *gorm.DB) DetalleVentaRepository {
	return newGormRepo[model.DetalleVenta](db)
}

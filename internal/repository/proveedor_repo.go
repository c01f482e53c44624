package repository

import (
	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Repo[model.Proveedor]
}

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return newGormRepo[model.Proveedor](db)
}

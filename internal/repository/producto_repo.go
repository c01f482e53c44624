package repository

import (
	"github.com/gleydi12/web-inventario/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductoRepository defines the data access contract for products.
type ProductoRepository interface {
	Repo[model.Producto]

	// Used inside transactions; callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error)
	// UpdateStockTx adds delta to the product stock and returns the stock
	// before and after the change.
	UpdateStockTx(tx *gorm.DB, id uint, delta int) (antes, despues int, err error)
}

type productoRepo struct{ *gormRepo[model.Producto] }

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepo{newGormRepo[model.Producto](db)}
}

func (r *productoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Producto, error) {
	q := tx
	// SQLite serialises writers already and has no FOR UPDATE.
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p model.Producto
	if err := q.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) UpdateStockTx(tx *gorm.DB, id uint, delta int) (int, int, error) {
	p, err := r.FindByIDTx(tx, id)
	if err != nil {
		return 0, 0, err
	}
	err = tx.Model(&model.Producto{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
	if err != nil {
		return 0, 0, err
	}
	return p.Stock, p.Stock + delta, nil
}

var _ ProductoRepository = (*productoRepo)(nil)

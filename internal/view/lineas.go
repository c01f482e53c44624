package view

import (
	"github.com/gleydi12/web-inventario/internal/form"
	"github.com/gleydi12/web-inventario/internal/lineitem"
	"github.com/gleydi12/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

// Catalog is the product list line views read prices and names from.
// *store.List[model.Producto] satisfies it.
type Catalog interface {
	lineitem.Catalog
	All() []model.Producto
}

// LineView is a View over purchase or sale lines with product auto-fill.
type LineView[T model.LineItem[T]] struct {
	*View[T]
	catalog Catalog
}

// blankLinea is one unit of the first catalog product at its catalog price.
func blankLinea(cat Catalog) model.Linea {
	l := model.Linea{Cantidad: 1}
	if cat == nil {
		return l
	}
	if all := cat.All(); len(all) > 0 {
		l = lineitem.SelectProduct(l, cat, all[0].ID)
	}
	return lineitem.Recalc(l)
}

func validLinea(l model.Linea) bool {
	return l.ProductoID != 0 && l.Cantidad >= 1 && l.PrecioUnitario >= 0
}

// DetallesCompra builds the purchase-line view. compraID 0 shows every line;
// otherwise lines are scoped to that purchase and new drafts default to it.
func DetallesCompra(b Backend[model.DetalleCompra], cat Catalog, compraID uint) *LineView[model.DetalleCompra] {
	defecto := compraID
	if defecto == 0 {
		defecto = 1
	}
	cfg := Config[model.DetalleCompra]{
		Names: Names{Singular: "el detalle de compra", Plural: "los detalles de compra"},
		Form: form.Config[model.DetalleCompra]{
			Blank: func() model.DetalleCompra {
				return model.DetalleCompra{CompraID: defecto, Linea: blankLinea(cat)}
			},
			Valid:   func(d model.DetalleCompra) bool { return d.CompraID != 0 && validLinea(d.Linea) },
			Prepare: lineitem.Prepare[model.DetalleCompra],
		},
		Fields: func(d model.DetalleCompra) []string {
			return []string{itoa(d.CompraID), lineitem.ProductName(cat, d.ProductoID)}
		},
	}
	if compraID != 0 {
		cfg.Scope = func(d model.DetalleCompra) bool { return d.CompraID == compraID }
	}
	return &LineView[model.DetalleCompra]{View: New(b, cfg), catalog: cat}
}

// DetallesVenta builds the sale-line view, optionally scoped to one sale.
func DetallesVenta(b Backend[model.DetalleVenta], cat Catalog, ventaID *uint) *LineView[model.DetalleVenta] {
	defecto := uint(1)
	if ventaID != nil {
		defecto = *ventaID
	}
	cfg := Config[model.DetalleVenta]{
		Names: Names{Singular: "el detalle de venta", Plural: "los detalles de venta"},
		Form: form.Config[model.DetalleVenta]{
			Blank: func() model.DetalleVenta {
				return model.DetalleVenta{VentaID: defecto, Linea: blankLinea(cat)}
			},
			Valid:   func(d model.DetalleVenta) bool { return d.VentaID != 0 && validLinea(d.Linea) },
			Prepare: lineitem.Prepare[model.DetalleVenta],
		},
		Fields: func(d model.DetalleVenta) []string {
			return []string{itoa(d.VentaID), lineitem.ProductName(cat, d.ProductoID)}
		},
	}
	if ventaID != nil {
		scope := *ventaID
		cfg.Scope = func(d model.DetalleVenta) bool { return d.VentaID == scope }
	}
	return &LineView[model.DetalleVenta]{View: New(b, cfg), catalog: cat}
}

func (v *LineView[T]) editLinea(fn func(model.Linea) model.Linea) {
	v.Form().Edit(func(rec *T) {
		*rec = (*rec).WithLinea(fn((*rec).GetLinea()))
	})
}

// SelectProduct points the draft at productoID and copies its catalog price.
func (v *LineView[T]) SelectProduct(productoID uint) {
	v.editLinea(func(l model.Linea) model.Linea {
		return lineitem.SelectProduct(l, v.catalog, productoID)
	})
}

func (v *LineView[T]) SetCantidad(n int) {
	v.editLinea(func(l model.Linea) model.Linea {
		l.Cantidad = n
		return l
	})
}

// SetPrecio overrides the unit price after a product was selected.
func (v *LineView[T]) SetPrecio(p float64) {
	v.editLinea(func(l model.Linea) model.Linea {
		l.PrecioUnitario = p
		return l
	})
}

// Subtotal is the draft subtotal formatted for display.
func (v *LineView[T]) Subtotal() string {
	return lineitem.FormatMoney(v.Form().Draft().GetLinea().Subtotal)
}

func (v *LineView[T]) ProductName(productoID uint) string {
	return lineitem.ProductName(v.catalog, productoID)
}

// Total sums the subtotals of the visible lines.
func (v *LineView[T]) Total() decimal.Decimal {
	visible := v.Visible()
	lines := make([]model.Linea, 0, len(visible))
	for _, rec := range visible {
		lines = append(lines, rec.GetLinea())
	}
	return lineitem.Total(lines)
}

// HasProduct reports whether productoID is in the catalog.
func (v *LineView[T]) HasProduct(productoID uint) bool {
	if v.catalog == nil {
		return false
	}
	_, ok := v.catalog.Get(productoID)
	return ok
}

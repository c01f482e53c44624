// Package lineitem derives line subtotals and fills unit prices from the
// product catalog.
package lineitem

import (
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/shopspring/decimal"
)

// Catalog resolves products by id. *store.List[model.Producto] satisfies it.
type Catalog interface {
	Get(id uint) (model.Producto, bool)
}

// Subtotal returns cantidad * precio. No rounding is applied.
func Subtotal(cantidad int, precio float64) float64 {
	return float64(cantidad) * precio
}

// Recalc sets l.Subtotal from its quantity and unit price.
func Recalc(l model.Linea) model.Linea {
	l.Subtotal = Subtotal(l.Cantidad, l.PrecioUnitario)
	return l
}

// SelectProduct points the line at productoID and, when the product is in the
// catalog, overwrites the unit price with its catalog price.
func SelectProduct(l model.Linea, cat Catalog, productoID uint) model.Linea {
	l.ProductoID = productoID
	if cat != nil {
		if p, ok := cat.Get(productoID); ok {
			l.PrecioUnitario = p.PrecioVenta
		}
	}
	return Recalc(l)
}

// Prepare is a form hook that keeps the subtotal of a line record in sync.
func Prepare[T model.LineItem[T]](rec T) T {
	return rec.WithLinea(Recalc(rec.GetLinea()))
}

// ProductName returns the catalog name of productoID, or "Desconocido".
func ProductName(cat Catalog, productoID uint) string {
	if cat != nil {
		if p, ok := cat.Get(productoID); ok {
			return p.Nombre
		}
	}
	return "Desconocido"
}

// FormatMoney renders v with two decimals, e.g. "$75.00".
func FormatMoney(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Total sums the subtotals of lines using decimal arithmetic, rounded to cents.
func Total(lines []model.Linea) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Subtotal))
	}
	return total.Round(2)
}

package view

import (
	"strconv"

	"github.com/gleydi12/web-inventario/internal/form"
	"github.com/gleydi12/web-inventario/internal/model"
)

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func Productos(b Backend[model.Producto]) *View[model.Producto] {
	return New(b, Config[model.Producto]{
		Names: Names{Singular: "el producto", Plural: "los productos"},
		Form: form.Config[model.Producto]{
			Blank: func() model.Producto { return model.Producto{} },
			Valid: func(p model.Producto) bool { return p.Nombre != "" },
		},
		Fields: func(p model.Producto) []string { return []string{p.Nombre, p.Descripcion} },
	})
}

func Proveedores(b Backend[model.Proveedor]) *View[model.Proveedor] {
	return New(b, Config[model.Proveedor]{
		Names: Names{Singular: "el proveedor", Plural: "los proveedores"},
		Form: form.Config[model.Proveedor]{
			Blank: func() model.Proveedor { return model.Proveedor{} },
			Valid: func(p model.Proveedor) bool { return p.Nombre != "" },
		},
		Fields: func(p model.Proveedor) []string { return []string{p.Nombre, p.Telefono, p.Email} },
	})
}

func Compras(b Backend[model.Compra]) *View[model.Compra] {
	return New(b, Config[model.Compra]{
		Names: Names{Singular: "la compra", Plural: "las compras"},
		Form: form.Config[model.Compra]{
			Blank: func() model.Compra { return model.Compra{} },
			Valid: func(c model.Compra) bool { return c.ProveedorID != 0 && c.Fecha != "" },
		},
		Fields: func(c model.Compra) []string { return []string{c.Fecha, itoa(c.ProveedorID)} },
	})
}

func Ventas(b Backend[model.Venta]) *View[model.Venta] {
	return New(b, Config[model.Venta]{
		Names: Names{Singular: "la venta", Plural: "las ventas"},
		Form: form.Config[model.Venta]{
			Blank: func() model.Venta { return model.Venta{} },
			Valid: func(v model.Venta) bool { return v.Fecha != "" },
		},
		Fields: func(v model.Venta) []string { return []string{v.Fecha} },
	})
}

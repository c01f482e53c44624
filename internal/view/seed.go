package view

import "github.com/gleydi12/web-inventario/internal/model"

// Sample data served by Local backends when no API is configured.

var SeedProductos = []model.Producto{
	{ID: 1, Nombre: "Laptop", Descripcion: "Portátil 15 pulgadas", PrecioVenta: 1200, Stock: 10},
	{ID: 2, Nombre: "Mouse", Descripcion: "Mouse óptico USB", PrecioVenta: 25, Stock: 40},
	{ID: 3, Nombre: "Teclado", Descripcion: "Teclado mecánico", PrecioVenta: 50, Stock: 15},
	{ID: 4, Nombre: "Monitor", Descripcion: "Monitor LED 24", PrecioVenta: 300, Stock: 0},
}

var SeedProveedores = []model.Proveedor{
	{ID: 1, Nombre: "Juan Pérez", Telefono: "555-1234", Email: "juan@proveedor1.com"},
	{ID: 2, Nombre: "María García", Telefono: "555-5678", Email: "maria@proveedor2.com"},
}

var SeedCompras = []model.Compra{
	{ID: 1, ProveedorID: 1, Fecha: "2023-05-15"},
	{ID: 2, ProveedorID: 2, Fecha: "2023-05-16"},
}

var SeedVentas = []model.Venta{
	{ID: 1, Fecha: "2023-05-15"},
	{ID: 2, Fecha: "2023-05-16"},
}

var SeedDetallesCompra = []model.DetalleCompra{
	{ID: 1, CompraID: 1, Linea: model.Linea{ProductoID: 1, Cantidad: 2, PrecioUnitario: 1200, Subtotal: 2400}},
	{ID: 2, CompraID: 1, Linea: model.Linea{ProductoID: 2, Cantidad: 3, PrecioUnitario: 25, Subtotal: 75}},
	{ID: 3, CompraID: 2, Linea: model.Linea{ProductoID: 3, Cantidad: 1, PrecioUnitario: 50, Subtotal: 50}},
}

var SeedDetallesVenta = []model.DetalleVenta{
	{ID: 1, VentaID: 1, Linea: model.Linea{ProductoID: 1, Cantidad: 2, PrecioUnitario: 1200, Subtotal: 2400}},
	{ID: 2, VentaID: 1, Linea: model.Linea{ProductoID: 2, Cantidad: 3, PrecioUnitario: 25, Subtotal: 75}},
	{ID: 3, VentaID: 2, Linea: model.Linea{ProductoID: 3, Cantidad: 1, PrecioUnitario: 50, Subtotal: 50}},
}

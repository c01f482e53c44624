package model

// Entity is implemented by every record kept in a list store.
// WithID returns a copy of the record carrying the given identifier.
type Entity[T any] interface {
	GetID() uint
	WithID(id uint) T
}

// LineItem is an Entity that carries a product line (detalle de compra / venta).
type LineItem[T any] interface {
	Entity[T]
	GetLinea() Linea
	WithLinea(l Linea) T
}

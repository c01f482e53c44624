package form

import (
	"testing"

	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productoForm() *Controller[model.Producto] {
	return New(Config[model.Producto]{
		Blank: func() model.Producto { return model.Producto{} },
		Valid: func(p model.Producto) bool { return p.Nombre != "" },
	})
}

func TestSubmit_CreaRegistro(t *testing.T) {
	l := store.New(model.Producto{ID: 1, Nombre: "Laptop", PrecioVenta: 1200})
	f := productoForm()

	f.Edit(func(p *model.Producto) {
		p.Nombre = "Mouse"
		p.PrecioVenta = 25
	})
	rec, err := f.Submit(l)

	require.NoError(t, err)
	assert.Equal(t, uint(2), rec.ID)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, Creating, f.Mode())
	assert.Equal(t, model.Producto{}, f.Draft())
}

func TestSubmit_ValidacionOmiteYConservaDraft(t *testing.T) {
	l := store.New[model.Producto]()
	f := productoForm()
	f.Edit(func(p *model.Producto) { p.Descripcion = "sin nombre" })

	_, err := f.Submit(l)

	assert.ErrorIs(t, err, ErrValidationSkip)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, "sin nombre", f.Draft().Descripcion)
}

func TestStartEditYSubmit_Actualiza(t *testing.T) {
	l := store.New(
		model.Producto{ID: 1, Nombre: "Laptop", PrecioVenta: 1200},
		model.Producto{ID: 2, Nombre: "Mouse", PrecioVenta: 25},
	)
	f := productoForm()

	require.True(t, f.StartEdit(l, 1))
	id, editing := f.Target()
	assert.True(t, editing)
	assert.Equal(t, uint(1), id)
	assert.Equal(t, "Laptop", f.Draft().Nombre)

	f.Edit(func(p *model.Producto) { p.PrecioVenta = 1100 })
	rec, err := f.Submit(l)

	require.NoError(t, err)
	assert.Equal(t, uint(1), rec.ID)
	got, _ := l.Get(1)
	assert.Equal(t, 1100.0, got.PrecioVenta)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, Creating, f.Mode())
}

func TestStartEditYCancel_NoModificaLista(t *testing.T) {
	l := store.New(model.Producto{ID: 1, Nombre: "Laptop", PrecioVenta: 1200})
	before := l.All()
	f := productoForm()

	f.StartEdit(l, 1)
	f.Edit(func(p *model.Producto) { p.Nombre = "Otro" })
	f.Cancel()

	assert.Equal(t, before, l.All())
	assert.Equal(t, Creating, f.Mode())
	assert.Equal(t, model.Producto{}, f.Draft())
	_, editing := f.Target()
	assert.False(t, editing)
}

func TestStartEdit_Inexistente(t *testing.T) {
	l := store.New[model.Producto]()
	f := productoForm()
	assert.False(t, f.StartEdit(l, 9))
	assert.Equal(t, Creating, f.Mode())
}

func TestPrepare_SeAplicaEnCadaCambio(t *testing.T) {
	f := New(Config[model.DetalleCompra]{
		Blank: func() model.DetalleCompra { return model.DetalleCompra{CompraID: 1} },
		Prepare: func(d model.DetalleCompra) model.DetalleCompra {
			d.Subtotal = float64(d.Cantidad) * d.PrecioUnitario
			return d
		},
	})

	f.Edit(func(d *model.DetalleCompra) {
		d.Cantidad = 3
		d.PrecioUnitario = 25
	})

	assert.Equal(t, 75.0, f.Draft().Subtotal)
}

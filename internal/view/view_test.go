package view

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gleydi12/web-inventario/internal/form"
	"github.com/gleydi12/web-inventario/internal/gateway"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stubBackend ───────────────────────────────────────────────────────────────

type stubBackend[T model.Entity[T]] struct {
	items   []T
	err     error
	nextID  uint
	created []T
	deleted []uint
}

func (b *stubBackend[T]) List(context.Context) ([]T, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.items, nil
}

func (b *stubBackend[T]) Create(_ context.Context, rec T) (T, error) {
	if b.err != nil {
		var zero T
		return zero, b.err
	}
	b.created = append(b.created, rec)
	if b.nextID != 0 {
		rec = rec.WithID(b.nextID)
	}
	return rec, nil
}

func (b *stubBackend[T]) Update(_ context.Context, id uint, rec T) (T, error) {
	if b.err != nil {
		var zero T
		return zero, b.err
	}
	return rec.WithID(id), nil
}

func (b *stubBackend[T]) Delete(_ context.Context, id uint) error {
	if b.err != nil {
		return b.err
	}
	b.deleted = append(b.deleted, id)
	return nil
}

var errCaido = errors.New("backend caído")

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_Local(t *testing.T) {
	v := Productos(NewLocal(SeedProductos...))

	require.NoError(t, v.Load(context.Background()))

	assert.Len(t, v.Visible(), 4)
	assert.False(t, v.Loading())
	assert.Empty(t, v.Error())
}

func TestLoad_Gateway404_EstadoDeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	res := gateway.NewResource[model.Producto](gateway.New(srv.URL, gateway.StaticToken("t")), gateway.PathProductos)
	v := Productos(res)

	err := v.Load(context.Background())

	var fe *gateway.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.Status)
	assert.Equal(t, "Error al obtener los productos", v.Error())
	assert.False(t, v.Loading())
	assert.Empty(t, v.Visible())
}

func TestLoad_ExitoLimpiaBanner(t *testing.T) {
	b := &stubBackend[model.Venta]{err: errCaido}
	v := Ventas(b)
	require.Error(t, v.Load(context.Background()))
	require.NotEmpty(t, v.Error())

	b.err = nil
	b.items = SeedVentas
	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, v.Error())
	assert.Len(t, v.Visible(), 2)
}

// ── Search ────────────────────────────────────────────────────────────────────

func TestVisible_Busqueda(t *testing.T) {
	v := Proveedores(NewLocal(SeedProveedores...))
	require.NoError(t, v.Load(context.Background()))

	v.SetQuery("MARÍA")
	got := v.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "María García", got[0].Nombre)

	v.SetQuery("555")
	assert.Len(t, v.Visible(), 2)

	v.SetQuery("")
	assert.Equal(t, SeedProveedores, v.Visible())
}

func TestVisible_ComprasPorProveedorID(t *testing.T) {
	v := Compras(NewLocal(SeedCompras...))
	require.NoError(t, v.Load(context.Background()))

	v.SetQuery("2")
	assert.Len(t, v.Visible(), 2) // every fecha contains a 2
	v.SetQuery("05-16")
	got := v.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)
}

// ── Submit ────────────────────────────────────────────────────────────────────

func TestSubmit_LocalCrea(t *testing.T) {
	v := Productos(NewLocal(model.Producto{ID: 1, Nombre: "Laptop", PrecioVenta: 1200}))
	require.NoError(t, v.Load(context.Background()))

	v.Form().Edit(func(p *model.Producto) {
		p.Nombre = "Mouse"
		p.PrecioVenta = 25
	})
	rec, err := v.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(2), rec.ID)
	all := v.Store().All()
	require.Len(t, all, 2)
	assert.Equal(t, "Mouse", all[1].Nombre)
	assert.Equal(t, uint(2), all[1].ID)
}

func TestSubmit_Validacion(t *testing.T) {
	b := &stubBackend[model.Compra]{}
	v := Compras(b)

	v.Form().Edit(func(c *model.Compra) { c.Fecha = "2023-06-01" })
	_, err := v.Submit(context.Background())

	assert.ErrorIs(t, err, form.ErrValidationSkip)
	assert.Empty(t, b.created)
	assert.Equal(t, 0, v.Store().Len())
	assert.Equal(t, "2023-06-01", v.Form().Draft().Fecha)
}

func TestSubmit_RemotoConfirmaConIDDelServidor(t *testing.T) {
	b := &stubBackend[model.Venta]{items: SeedVentas, nextID: 40}
	v := Ventas(b)
	require.NoError(t, v.Load(context.Background()))

	v.Form().Edit(func(x *model.Venta) { x.Fecha = "2023-07-01" })
	rec, err := v.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(40), rec.ID)
	_, tentative := v.Store().Get(3)
	assert.False(t, tentative)
	got, ok := v.Store().Get(40)
	require.True(t, ok)
	assert.Equal(t, "2023-07-01", got.Fecha)
}

func TestSubmit_FalloRemotoRevierte(t *testing.T) {
	b := &stubBackend[model.Venta]{items: SeedVentas}
	v := Ventas(b)
	require.NoError(t, v.Load(context.Background()))
	b.err = errCaido

	v.Form().Edit(func(x *model.Venta) { x.Fecha = "2023-07-01" })
	_, err := v.Submit(context.Background())

	assert.ErrorIs(t, err, errCaido)
	assert.Equal(t, "Error al crear la venta", v.Error())
	assert.Equal(t, SeedVentas, v.Store().All())
	assert.Equal(t, "2023-07-01", v.Form().Draft().Fecha)
	assert.Equal(t, form.Creating, v.Form().Mode())
}

func TestSubmit_EdicionFallidaRevierteYSigueEditando(t *testing.T) {
	b := &stubBackend[model.Producto]{items: SeedProductos}
	v := Productos(b)
	require.NoError(t, v.Load(context.Background()))
	b.err = errCaido

	require.True(t, v.StartEdit(2))
	v.Form().Edit(func(p *model.Producto) { p.PrecioVenta = 30 })
	_, err := v.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Error al actualizar el producto", v.Error())
	orig, _ := v.Store().Get(2)
	assert.Equal(t, 25.0, orig.PrecioVenta)
	target, editing := v.Form().Target()
	assert.True(t, editing)
	assert.Equal(t, uint(2), target)
	assert.Equal(t, 30.0, v.Form().Draft().PrecioVenta)
}

func TestStartEditCancel_ListaIntacta(t *testing.T) {
	v := Productos(NewLocal(SeedProductos...))
	require.NoError(t, v.Load(context.Background()))
	before := v.Store().All()

	v.StartEdit(1)
	v.Cancel()

	assert.Equal(t, before, v.Store().All())
	assert.Equal(t, form.Creating, v.Form().Mode())
	assert.Equal(t, model.Producto{}, v.Form().Draft())
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	b := &stubBackend[model.Proveedor]{items: SeedProveedores}
	v := Proveedores(b)
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.Delete(context.Background(), 1))

	assert.Equal(t, []uint{1}, b.deleted)
	assert.Equal(t, 1, v.Store().Len())
}

func TestDelete_InexistenteEsNoOp(t *testing.T) {
	b := &stubBackend[model.Proveedor]{items: SeedProveedores}
	v := Proveedores(b)
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.Delete(context.Background(), 99))
	assert.Empty(t, b.deleted)
	assert.Equal(t, 2, v.Store().Len())
}

func TestDelete_FalloRestaura(t *testing.T) {
	b := &stubBackend[model.Proveedor]{items: SeedProveedores}
	v := Proveedores(b)
	require.NoError(t, v.Load(context.Background()))
	b.err = errCaido

	require.Error(t, v.Delete(context.Background(), 1))

	assert.Equal(t, SeedProveedores, v.Store().All())
	assert.Equal(t, "Error al eliminar el proveedor", v.Error())
}

func TestDelete_CancelaEdicionDelRegistro(t *testing.T) {
	v := Proveedores(NewLocal(SeedProveedores...))
	require.NoError(t, v.Load(context.Background()))
	v.StartEdit(2)

	require.NoError(t, v.Delete(context.Background(), 2))

	assert.Equal(t, form.Creating, v.Form().Mode())
}

// ── Line views ────────────────────────────────────────────────────────────────

func TestDetallesCompra_AutocompletaYCalcula(t *testing.T) {
	cat := store.New(SeedProductos...)
	v := DetallesCompra(NewLocal(SeedDetallesCompra...), cat, 0)
	require.NoError(t, v.Load(context.Background()))

	draft := v.Form().Draft()
	assert.Equal(t, uint(1), draft.CompraID)
	assert.Equal(t, uint(1), draft.ProductoID)
	assert.Equal(t, 1, draft.Cantidad)
	assert.Equal(t, 1200.0, draft.PrecioUnitario)

	v.SelectProduct(2)
	v.SetCantidad(3)
	assert.Equal(t, "$75.00", v.Subtotal())

	v.SetPrecio(20)
	assert.Equal(t, "$60.00", v.Subtotal())

	rec, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(4), rec.ID)
	assert.Equal(t, 60.0, rec.Subtotal)
	assert.Equal(t, rec.PrecioUnitario*float64(rec.Cantidad), rec.Subtotal)
}

func TestDetallesCompra_EdicionRecalculaSubtotal(t *testing.T) {
	cat := store.New(SeedProductos...)
	v := DetallesCompra(NewLocal(SeedDetallesCompra...), cat, 0)
	require.NoError(t, v.Load(context.Background()))

	require.True(t, v.StartEdit(2))
	v.SetCantidad(10)
	_, err := v.Submit(context.Background())
	require.NoError(t, err)

	got, _ := v.Store().Get(2)
	assert.Equal(t, 250.0, got.Subtotal)
}

func TestDetallesCompra_BusquedaPorNombreDeProducto(t *testing.T) {
	cat := store.New(SeedProductos...)
	v := DetallesCompra(NewLocal(SeedDetallesCompra...), cat, 0)
	require.NoError(t, v.Load(context.Background()))

	v.SetQuery("teclado")
	got := v.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, "Teclado", v.ProductName(got[0].ProductoID))
}

func TestDetallesVenta_Alcance(t *testing.T) {
	cat := store.New(SeedProductos...)
	ventaID := uint(1)
	v := DetallesVenta(NewLocal(SeedDetallesVenta...), cat, &ventaID)
	require.NoError(t, v.Load(context.Background()))

	assert.Len(t, v.Visible(), 2)
	assert.Equal(t, "2475.00", v.Total().StringFixed(2))
	assert.Equal(t, uint(1), v.Form().Draft().VentaID)

	rec, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(3), rec.ID)
	assert.Equal(t, uint(1), rec.VentaID)
}

func TestDetallesVenta_SinCantidadNoSeGuarda(t *testing.T) {
	v := DetallesVenta(NewLocal[model.DetalleVenta](), store.New(SeedProductos...), nil)

	v.SetCantidad(0)
	_, err := v.Submit(context.Background())

	assert.ErrorIs(t, err, form.ErrValidationSkip)
	assert.Equal(t, 0, v.Store().Len())
}

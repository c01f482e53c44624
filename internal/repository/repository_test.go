package repository

import (
	"context"
	"testing"

	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCRUD_Proveedor(t *testing.T) {
	ctx := context.Background()
	repo := NewProveedorRepository(testutil.NewDB(t))

	p := &model.Proveedor{Nombre: "Juan Pérez", Telefono: "555-1234"}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", got.Nombre)

	got.Email = "juan@proveedor1.com"
	require.NoError(t, repo.Update(ctx, got))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "juan@proveedor1.com", list[0].Email)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), gorm.ErrRecordNotFound)
}

func TestListBy_DetallesPorCompra(t *testing.T) {
	ctx := context.Background()
	repo := NewDetalleCompraRepository(testutil.NewDB(t))

	for _, d := range []model.DetalleCompra{
		{CompraID: 1, Linea: model.Linea{ProductoID: 1, Cantidad: 2, PrecioUnitario: 1200, Subtotal: 2400}},
		{CompraID: 2, Linea: model.Linea{ProductoID: 3, Cantidad: 1, PrecioUnitario: 50, Subtotal: 50}},
		{CompraID: 1, Linea: model.Linea{ProductoID: 2, Cantidad: 3, PrecioUnitario: 25, Subtotal: 75}},
	} {
		require.NoError(t, repo.Create(ctx, &d))
	}

	got, err := repo.ListBy(ctx, "compra_id", uint(1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ProductoID)
	assert.Equal(t, uint(2), got[1].ProductoID)

	n, err := repo.CountBy(ctx, "producto_id", uint(3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUpdateStockTx(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewProductoRepository(db)
	p := &model.Producto{Nombre: "Mouse", PrecioVenta: 25, Stock: 40}
	require.NoError(t, repo.Create(ctx, p))

	var antes, despues int
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		antes, despues, err = repo.UpdateStockTx(tx, p.ID, -3)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 40, antes)
	assert.Equal(t, 37, despues)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 37, got.Stock)
}

func TestMovimientos_OrdenDescendente(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewMovimientoStockRepository(db)

	for i, delta := range []int{5, -2, 1} {
		m := &model.MovimientoStock{ProductoID: 7, Tipo: "compra", Cantidad: delta, StockNuevo: i}
		require.NoError(t, repo.CreateTx(db, m))
	}
	require.NoError(t, repo.CreateTx(db, &model.MovimientoStock{ProductoID: 8, Tipo: "venta", Cantidad: -1}))

	got, err := repo.ListByProducto(ctx, 7, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Cantidad)
}

func TestUsuario_SoloActivos(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewUsuarioRepository(db)

	u := &model.Usuario{Username: "admin", Nombre: "Admin", PasswordHash: "x", Activo: true}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, db.Model(&model.Usuario{}).Where("id = ?", u.ID).Update("activo", false).Error)
	_, err = repo.FindByUsername(ctx, "admin")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

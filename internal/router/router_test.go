package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gleydi12/web-inventario/internal/config"
	"github.com/gleydi12/web-inventario/internal/gateway"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"
	"github.com/gleydi12/web-inventario/internal/service"
	"github.com/gleydi12/web-inventario/internal/testutil"
	"github.com/gleydi12/web-inventario/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

type testEnv struct {
	server *httptest.Server
	token  string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 1,
		CacheTTLSeconds:    60,
		CORSOrigin:         "*",
	}

	auth := service.NewAuthService(repository.NewUsuarioRepository(db), cfg)
	_, err := auth.GuardarUsuario(context.Background(), "admin", "Admin", "admin1234")
	require.NoError(t, err)

	srv := httptest.NewServer(New(cfg, db, nil, prometheus.NewRegistry()))
	t.Cleanup(srv.Close)

	login, err := gateway.New(srv.URL, nil).Login(context.Background(), "admin", "admin1234")
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)

	return &testEnv{server: srv, token: login.AccessToken}
}

func (e *testEnv) client() *gateway.Client {
	return gateway.New(e.server.URL, gateway.StaticToken(e.token))
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	env := setup(t)
	resp, err := http.Get(env.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "connected", body["db"])
	assert.Equal(t, "disabled", body["redis"])
}

func TestSinToken401(t *testing.T) {
	env := setup(t)
	_, err := gateway.NewResource[model.Producto](gateway.New(env.server.URL, nil), gateway.PathProductos).List(context.Background())

	require.Error(t, err)
	assert.True(t, gateway.IsUnauthorized(err))
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	env := setup(t)
	_, err := gateway.New(env.server.URL, nil).Login(context.Background(), "admin", "incorrecta")

	var fe *gateway.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.Status)
}

func TestProductosCRUD_ViaVista(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	v := view.Productos(gateway.NewResource[model.Producto](env.client(), gateway.PathProductos))

	require.NoError(t, v.Load(ctx))
	assert.Empty(t, v.Store().All())

	v.Form().Edit(func(p *model.Producto) {
		p.Nombre = "Mouse"
		p.Descripcion = "Mouse óptico"
		p.PrecioVenta = 25
		p.Stock = 40
	})
	creado, err := v.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), creado.ID)

	require.True(t, v.StartEdit(creado.ID))
	v.Form().Edit(func(p *model.Producto) { p.PrecioVenta = 30 })
	_, err = v.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, v.Load(ctx))
	got, ok := v.Store().Get(creado.ID)
	require.True(t, ok)
	assert.Equal(t, 30.0, got.PrecioVenta)

	require.NoError(t, v.Delete(ctx, creado.ID))
	require.NoError(t, v.Load(ctx))
	assert.Empty(t, v.Store().All())
}

func TestDeleteAck(t *testing.T) {
	env := setup(t)
	resp := env.do(t, http.MethodPost, "/proveedores", map[string]string{"nombre": "Juan Pérez", "telefono": "555-1234"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/proveedores/1", nil)
	var ack map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, ack["deleted"])
	assert.Equal(t, 1.0, ack["id"])

	resp = env.do(t, http.MethodDelete, "/proveedores/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidacion422(t *testing.T) {
	env := setup(t)
	resp := env.do(t, http.MethodPost, "/compras", map[string]any{"proveedorId": 1, "fecha": "15/05/2023"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/compras", map[string]any{"proveedorId": 99, "fecha": "2023-05-15"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "proveedor inexistente")

	resp = env.do(t, http.MethodGet, "/compras/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompraConDetalles_StockYTotal(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	c := env.client()

	productos := gateway.NewResource[model.Producto](c, gateway.PathProductos)
	for _, p := range view.SeedProductos {
		_, err := productos.Create(ctx, p)
		require.NoError(t, err)
	}
	_, err := gateway.NewResource[model.Proveedor](c, gateway.PathProveedores).Create(ctx, model.Proveedor{Nombre: "Juan Pérez"})
	require.NoError(t, err)
	compra, err := gateway.NewResource[model.Compra](c, gateway.PathCompras).Create(ctx, model.Compra{ProveedorID: 1, Fecha: "2023-05-15"})
	require.NoError(t, err)

	cat := view.Productos(productos)
	require.NoError(t, cat.Load(ctx))
	lv := view.DetallesCompra(gateway.NewResource[model.DetalleCompra](c, gateway.PathDetallesCompras), cat.Store(), compra.ID)
	require.NoError(t, lv.Load(ctx))

	lv.SelectProduct(2)
	lv.SetCantidad(3)
	assert.Equal(t, "$75.00", lv.Subtotal())
	linea, err := lv.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 75.0, linea.Subtotal)

	mouse, err := productos.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 43, mouse.Stock, "inline stock update")

	resp := env.do(t, http.MethodGet, "/compras/1/total", nil)
	var total struct {
		Lineas int             `json:"lineas"`
		Total  decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&total))
	assert.Equal(t, 1, total.Lineas)
	assert.True(t, total.Total.Equal(decimal.NewFromInt(75)), total.Total.String())

	resp = env.do(t, http.MethodGet, "/productos/2/movimientos", nil)
	var movs []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movs))
	require.Len(t, movs, 1)
	assert.Equal(t, "compra", movs[0]["tipo"])

	resp = env.do(t, http.MethodDelete, "/productos/2", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "producto con detalles")

	resp = env.do(t, http.MethodGet, "/detalles-compras?compraId=2", nil)
	var vacio []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vacio))
	assert.Empty(t, vacio)
}

func TestEditarProductoConStockNegativo(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	c := env.client()

	productos := gateway.NewResource[model.Producto](c, gateway.PathProductos)
	_, err := productos.Create(ctx, model.Producto{Nombre: "Monitor", PrecioVenta: 300, Stock: 1})
	require.NoError(t, err)
	venta, err := gateway.NewResource[model.Venta](c, gateway.PathVentas).Create(ctx, model.Venta{Fecha: "2023-05-16"})
	require.NoError(t, err)

	v := view.Productos(productos)
	require.NoError(t, v.Load(ctx))
	lv := view.DetallesVenta(gateway.NewResource[model.DetalleVenta](c, gateway.PathDetallesVentas), v.Store(), &venta.ID)
	require.NoError(t, lv.Load(ctx))
	lv.SelectProduct(1)
	lv.SetCantidad(3)
	_, err = lv.Submit(ctx)
	require.NoError(t, err)

	require.NoError(t, v.Load(ctx))
	monitor, ok := v.Store().Get(1)
	require.True(t, ok)
	require.Equal(t, -2, monitor.Stock)

	require.True(t, v.StartEdit(1))
	v.Form().Edit(func(p *model.Producto) { p.Descripcion = "Monitor 27 pulgadas" })
	editado, err := v.Submit(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Error())
	assert.Equal(t, "Monitor 27 pulgadas", editado.Descripcion)

	got, err := productos.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Monitor 27 pulgadas", got.Descripcion)
	assert.Equal(t, -2, got.Stock)
}

func TestDLQSinRedisNoExiste(t *testing.T) {
	env := setup(t)
	resp := env.do(t, http.MethodPost, "/admin/dlq/requeue", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	env := setup(t)
	env.do(t, http.MethodGet, "/productos", nil)

	resp, err := http.Get(env.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/productos",status="200"} 1`)
}

package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method, path, auth, contentType string
	body                            map[string]any
}

func newServer(t *testing.T, status int, resp any, got *captured) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			got.method = r.Method
			got.path = r.URL.RequestURI()
			got.auth = r.Header.Get("Authorization")
			got.contentType = r.Header.Get("Content-Type")
			if b, _ := io.ReadAll(r.Body); len(b) > 0 {
				_ = json.Unmarshal(b, &got.body)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if resp != nil {
			_ = json.NewEncoder(w).Encode(resp)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestList_EnviaTokenYDecodifica(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, []model.Producto{
		{ID: 1, Nombre: "Laptop", PrecioVenta: 1200, Stock: 5},
	}, &got)
	res := NewResource[model.Producto](New(srv.URL, StaticToken("abc")), PathProductos)

	list, err := res.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Laptop", list[0].Nombre)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/productos", got.path)
	assert.Equal(t, "Bearer abc", got.auth)
	assert.Equal(t, "application/json", got.contentType)
}

func TestList_404DevuelveFetchError(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, map[string]string{"detail": "no existe"}, nil)
	res := NewResource[model.Producto](New(srv.URL, nil), PathProductos)

	list, err := res.List(context.Background())

	assert.Nil(t, list)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.Status)
	assert.Equal(t, "no existe", fe.Detail)
	assert.True(t, IsNotFound(err))
}

func TestCreate_NoEnviaID(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusCreated, model.Producto{ID: 9, Nombre: "Mouse", PrecioVenta: 25}, &got)
	res := NewResource[model.Producto](New(srv.URL, StaticToken("t")), PathProductos)

	out, err := res.Create(context.Background(), model.Producto{ID: 3, Nombre: "Mouse", PrecioVenta: 25})

	require.NoError(t, err)
	assert.Equal(t, uint(9), out.ID)
	assert.Equal(t, http.MethodPost, got.method)
	assert.NotContains(t, got.body, "id")
	assert.Equal(t, "Mouse", got.body["nombre"])
	assert.Equal(t, 25.0, got.body["precio_venta"])
}

func TestUpdate_UsaRutaConID(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, model.DetalleCompra{ID: 4, CompraID: 1}, &got)
	res := NewResource[model.DetalleCompra](New(srv.URL, nil), PathDetallesCompras)

	_, err := res.Update(context.Background(), 4, model.DetalleCompra{ID: 4, CompraID: 1,
		Linea: model.Linea{ProductoID: 2, Cantidad: 3, PrecioUnitario: 25, Subtotal: 75}})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/detalles-compras/4", got.path)
	assert.NotContains(t, got.body, "id")
	assert.Equal(t, 3.0, got.body["cantidad"])
	assert.Equal(t, 2.0, got.body["productoId"])
}

func TestDelete(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, DeleteAck{Deleted: true, ID: 2}, &got)
	res := NewResource[model.Proveedor](New(srv.URL, nil), PathProveedores)

	require.NoError(t, res.Delete(context.Background(), 2))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/proveedores/2", got.path)
}

func TestDelete_500(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, nil, nil)
	res := NewResource[model.Proveedor](New(srv.URL, nil), PathProveedores)

	err := res.Delete(context.Background(), 2)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
}

func TestTransporte_FallaSinStatus(t *testing.T) {
	srv := newServer(t, http.StatusOK, nil, nil)
	url := srv.URL
	srv.Close()
	res := NewResource[model.Venta](New(url, nil), PathVentas)

	_, err := res.List(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, fe.Status)
	assert.Error(t, fe.Unwrap())
}

func TestLogin(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, LoginResponse{AccessToken: "jwt", TokenType: "bearer"}, &got)

	resp, err := New(srv.URL, nil).Login(context.Background(), "admin", "secreto")

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, "/auth/login", got.path)
	assert.Equal(t, "admin", got.body["username"])
}

func TestFileToken(t *testing.T) {
	tok := FileToken{Path: filepath.Join(t.TempDir(), "sub", "token")}
	assert.Equal(t, "", tok.Token())

	require.NoError(t, tok.Save("abc"))
	assert.Equal(t, "abc", tok.Token())

	require.NoError(t, tok.Clear())
	require.NoError(t, tok.Clear())
	assert.Equal(t, "", tok.Token())
}

func TestSinToken_EnviaBearerVacio(t *testing.T) {
	var got captured
	srv := newServer(t, http.StatusOK, []model.Venta{}, &got)
	tok := FileToken{Path: filepath.Join(t.TempDir(), "missing")}

	_, err := NewResource[model.Venta](New(srv.URL, tok), PathVentas).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer", strings.TrimSpace(got.auth))
}

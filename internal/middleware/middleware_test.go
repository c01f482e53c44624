package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func protected(secret string) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", JWTAuth(secret), func(c *gin.Context) {
		cl := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user": cl.Username, "id": cl.UserID})
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	r := protected("s3cret")
	valid := signed(t, "s3cret", jwt.MapClaims{"user_id": 7, "username": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signed(t, "s3cret", jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Hour).Unix()})
	otherKey := signed(t, "otra", jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(time.Hour).Unix()})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"sin cabecera", "", http.StatusUnauthorized},
		{"bearer vacío", "Bearer ", http.StatusUnauthorized},
		{"expirado", "Bearer " + expired, http.StatusUnauthorized},
		{"otra clave", "Bearer " + otherKey, http.StatusUnauthorized},
		{"válido", "Bearer " + valid, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestRequestID_PropagaCabecera(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestFixedWindow(t *testing.T) {
	w := newFixedWindow(2, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	ok, _ := w.allow("1.1.1.1", now)
	assert.True(t, ok)
	ok, _ = w.allow("1.1.1.1", now)
	assert.True(t, ok)
	ok, _ = w.allow("1.1.1.1", now)
	assert.False(t, ok)
	ok, _ = w.allow("2.2.2.2", now)
	assert.True(t, ok, "limits are per IP")

	later := now.Add(2 * time.Minute)
	ok, _ = w.allow("1.1.1.1", later)
	assert.True(t, ok, "a new window resets the count")
	assert.Equal(t, 1, w.purge(later))
}

func TestErrorHandler_Oculta500(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) { _ = c.Error(assert.AnError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Error interno del servidor"}`, w.Body.String())
}

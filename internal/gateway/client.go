// Package gateway is the HTTP client for the inventory backend. Every call
// carries the bearer token and speaks JSON both ways. Failures are returned as
// *FetchError; nothing is retried.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gleydi12/web-inventario/internal/model"
)

const (
	PathProductos       = "/productos"
	PathProveedores     = "/proveedores"
	PathCompras         = "/compras"
	PathVentas          = "/ventas"
	PathDetallesCompras = "/detalles-compras"
	PathDetallesVentas  = "/detalles-ventas"
	PathLogin           = "/auth/login"
)

// Client performs requests against the backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets a per-request timeout. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = StaticToken("")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiError struct {
	Detail string `json:"detail"`
}

// Do sends body (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Method: method, Path: path, Err: fmt.Errorf("marshal body: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &FetchError{Method: method, Path: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &FetchError{Method: method, Path: path, Status: resp.StatusCode}
		var ae apiError
		if json.NewDecoder(resp.Body).Decode(&ae) == nil {
			fe.Detail = ae.Detail
		}
		return fe
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &FetchError{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.Do(ctx, http.MethodPost, PathLogin, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAck is the acknowledgement returned by DELETE endpoints.
type DeleteAck struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

// Resource is the REST surface of one entity collection.
type Resource[T model.Entity[T]] struct {
	c    *Client
	path string
}

func NewResource[T model.Entity[T]](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) item(id uint) string { return fmt.Sprintf("%s/%d", r.path, id) }

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.Do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id uint) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodGet, r.item(id), nil, &out)
	return out, err
}

// Create posts rec without its identifier and returns the stored record.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodPost, r.path, rec.WithID(0), &out)
	return out, err
}

// Update puts rec without its identifier to /path/{id}.
func (r *Resource[T]) Update(ctx context.Context, id uint, rec T) (T, error) {
	var out T
	err := r.c.Do(ctx, http.MethodPut, r.item(id), rec.WithID(0), &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	var ack DeleteAck
	return r.c.Do(ctx, http.MethodDelete, r.item(id), nil, &ack)
}

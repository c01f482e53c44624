package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gleydi12/web-inventario/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyProductos = "productos:lista"

// ProductoCache keeps the product list in Redis. Every operation is best
// effort: a nil client or an open breaker turns it into a no-op and callers
// fall through to the database.
type ProductoCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *infra.Breaker
}

func NewProductoCache(rdb *redis.Client, ttl time.Duration) *ProductoCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductoCache{rdb: rdb, ttl: ttl, breaker: infra.NewBreaker(3, 30*time.Second)}
}

func (c *ProductoCache) enabled() bool { return c != nil && c.rdb != nil }

// get decodes the cached list into out and reports a hit.
func (c *ProductoCache) get(ctx context.Context, out any) bool {
	if !c.enabled() {
		return false
	}
	var raw []byte
	err := c.breaker.Do(func() error {
		var err error
		raw, err = c.rdb.Get(ctx, cacheKeyProductos).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	})
	if err != nil {
		c.warn(err, "get")
		return false
	}
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *ProductoCache) set(ctx context.Context, v any) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.breaker.Do(func() error {
		return c.rdb.Set(ctx, cacheKeyProductos, data, c.ttl).Err()
	}); err != nil {
		c.warn(err, "set")
	}
}

// Invalidate drops the cached list after any product write or stock change.
func (c *ProductoCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.breaker.Do(func() error {
		return c.rdb.Del(ctx, cacheKeyProductos).Err()
	}); err != nil {
		c.warn(err, "del")
	}
}

func (c *ProductoCache) warn(err error, op string) {
	if errors.Is(err, infra.ErrBreakerOpen) {
		return
	}
	log.Warn().Err(err).Str("key", cacheKeyProductos).Str("op", op).Msg("cache de productos no disponible")
}

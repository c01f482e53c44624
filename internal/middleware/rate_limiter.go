package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gleydi12/web-inventario/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// fixedWindow counts requests per client IP in fixed windows.
type fixedWindow struct {
	mu     sync.Mutex
	hits   map[string]*windowEntry
	limit  int
	window time.Duration
}

type windowEntry struct {
	count int
	end   time.Time
}

func newFixedWindow(limit int, window time.Duration) *fixedWindow {
	w := &fixedWindow{hits: make(map[string]*windowEntry), limit: limit, window: window}
	register(w)
	return w
}

// allow records one hit for key and reports whether it is within the limit,
// plus the end of the current window.
func (w *fixedWindow) allow(key string, now time.Time) (bool, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.hits[key]
	if !ok || now.After(e.end) {
		e = &windowEntry{end: now.Add(w.window)}
		w.hits[key] = e
	}
	e.count++
	return e.count <= w.limit, e.end
}

// purge drops expired entries and returns how many were removed.
func (w *fixedWindow) purge(now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for k, e := range w.hits {
		if now.After(e.end) {
			delete(w.hits, k)
			n++
		}
	}
	return n
}

func (w *fixedWindow) handler(msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, end := w.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", end.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newFixedWindow(20, time.Minute).handler("Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter limits every client IP to limit requests per window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newFixedWindow(limit, window).handler("Demasiadas solicitudes. Intente nuevamente en un momento.")
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// One goroutine sweeps every limiter so IPs that never return do not pile up.

const purgeInterval = 5 * time.Minute

var (
	limitersMu sync.Mutex
	limiters   []*fixedWindow
	purgeOnce  sync.Once
)

func register(w *fixedWindow) {
	limitersMu.Lock()
	limiters = append(limiters, w)
	limitersMu.Unlock()
	purgeOnce.Do(func() { go purgeLoop() })
}

func purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		limitersMu.Lock()
		purged := 0
		for _, w := range limiters {
			purged += w.purge(now)
		}
		limitersMu.Unlock()
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}

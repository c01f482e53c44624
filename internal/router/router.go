package router

import (
	"time"

	"github.com/gleydi12/web-inventario/internal/config"
	"github.com/gleydi12/web-inventario/internal/handler"
	"github.com/gleydi12/web-inventario/internal/metrics"
	"github.com/gleydi12/web-inventario/internal/middleware"
	"github.com/gleydi12/web-inventario/internal/repository"
	"github.com/gleydi12/web-inventario/internal/service"
	"github.com/gleydi12/web-inventario/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// A nil rdb disables the product cache and applies stock changes inline.
// A nil reg disables request metrics and /metrics.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, reg *prometheus.Registry) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	if reg != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(reg)))
	}
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	cache := service.NewProductoCache(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	var queue service.StockQueue
	if rdb != nil {
		queue = worker.NewDispatcher(rdb)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	detalleCompraRepo := repository.NewDetalleCompraRepository(db)
	detalleVentaRepo := repository.NewDetalleVentaRepository(db)
	movimientoStockRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoStockRepo, queue, cache)
	productoSvc := service.NewProductoService(productoRepo, movimientoStockRepo, detalleCompraRepo, detalleVentaRepo, cache)
	proveedorSvc := service.NewProveedorService(proveedorRepo, compraRepo)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, detalleCompraRepo)
	ventaSvc := service.NewVentaService(ventaRepo, detalleVentaRepo)
	detalleCompraSvc := service.NewDetalleCompraService(detalleCompraRepo, compraRepo, productoRepo, inventarioSvc)
	detalleVentaSvc := service.NewDetalleVentaService(detalleVentaRepo, ventaRepo, productoRepo, inventarioSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc, inventarioSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	comprasH := handler.NewComprasHandler(compraSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	detallesCompraH := handler.NewDetallesCompraHandler(detalleCompraSvc)
	detallesVentaH := handler.NewDetallesVentaHandler(detalleVentaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	api := r.Group("", middleware.JWTAuth(cfg.JWTSecret))
	{
		prods := api.Group("/productos")
		{
			prods.GET("", productosH.Listar)
			prods.POST("", productosH.Crear)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.GET("/:id/movimientos", productosH.Movimientos)
		}

		prov := api.Group("/proveedores")
		{
			prov.GET("", proveedoresH.Listar)
			prov.POST("", proveedoresH.Crear)
			prov.GET("/:id", proveedoresH.ObtenerPorID)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
		}

		compras := api.Group("/compras")
		{
			compras.GET("", comprasH.Listar)
			compras.POST("", comprasH.Crear)
			compras.GET("/:id", comprasH.ObtenerPorID)
			compras.PUT("/:id", comprasH.Actualizar)
			compras.DELETE("/:id", comprasH.Eliminar)
			compras.GET("/:id/total", comprasH.Total)
		}

		ventas := api.Group("/ventas")
		{
			ventas.GET("", ventasH.Listar)
			ventas.POST("", ventasH.Crear)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.PUT("/:id", ventasH.Actualizar)
			ventas.DELETE("/:id", ventasH.Eliminar)
			ventas.GET("/:id/total", ventasH.Total)
		}

		dc := api.Group("/detalles-compras")
		{
			dc.GET("", detallesCompraH.Listar)
			dc.POST("", detallesCompraH.Crear)
			dc.GET("/:id", detallesCompraH.ObtenerPorID)
			dc.PUT("/:id", detallesCompraH.Actualizar)
			dc.DELETE("/:id", detallesCompraH.Eliminar)
		}

		dv := api.Group("/detalles-ventas")
		{
			dv.GET("", detallesVentaH.Listar)
			dv.POST("", detallesVentaH.Crear)
			dv.GET("/:id", detallesVentaH.ObtenerPorID)
			dv.PUT("/:id", detallesVentaH.Actualizar)
			dv.DELETE("/:id", detallesVentaH.Eliminar)
		}

		// Dead-letter queue of the stock worker; only exists with Redis.
		if rdb != nil {
			dlqH := handler.NewDLQHandler(rdb)
			admin := api.Group("/admin/dlq")
			admin.GET("", dlqH.Pendientes)
			admin.POST("/requeue", dlqH.Reencolar)
		}
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

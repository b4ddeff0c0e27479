package router

import (
	"time"

	"github.com/oscarmanceraa/KitchON/internal/config"
	"github.com/oscarmanceraa/KitchON/internal/handler"
	"github.com/oscarmanceraa/KitchON/internal/middleware"
	"github.com/oscarmanceraa/KitchON/internal/repository"
	"github.com/oscarmanceraa/KitchON/internal/service"
	"github.com/oscarmanceraa/KitchON/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	estadoRepo := repository.NewEstadoRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	tipoProductoRepo := repository.NewTipoProductoRepository(db)
	tipoUsuarioRepo := repository.NewTipoUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	referenciaSvc := service.NewReferenciaService(estadoRepo, mesaRepo, tipoProductoRepo, tipoUsuarioRepo, rdb)
	productoSvc := service.NewProductoService(productoRepo, tipoProductoRepo, estadoRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, tipoUsuarioRepo, estadoRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, usuarioRepo, mesaRepo, estadoRepo, productoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	referenciasH := handler.NewReferenciasHandler(referenciaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	ticketsH := handler.NewTicketsHandler(ordenRepo, cfg.TicketStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.GET("/verify", authH.Verify)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/", jwtMW)
	{
		// Reference catalogs — read only, any authenticated role
		api.GET("/estados", referenciasH.ListarEstados)
		api.GET("/mesas", referenciasH.ListarMesas)
		api.GET("/tipos-producto", referenciasH.ListarTiposProducto)
		api.GET("/tipos-usuario", referenciasH.ListarTiposUsuario)

		productos := api.Group("/productos")
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		// Staff accounts — only administrators may create or modify
		api.GET("/usuarios", usuariosH.Listar)
		api.GET("/usuarios/:id", usuariosH.ObtenerPorID)
		usuarios := api.Group("/usuarios", middleware.RequireRole("Administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.PUT("/:id", usuariosH.Actualizar)
		}

		ordenes := api.Group("/ordenes")
		{
			ordenes.POST("", ordenesH.Crear)
			ordenes.GET("", ordenesH.Listar)
			ordenes.GET("/:id", ordenesH.ObtenerPorID)
			ordenes.PATCH("/:id/estado", ordenesH.ActualizarEstado)
			ordenes.DELETE("/:id", ordenesH.Eliminar)
			ordenes.GET("/:id/ticket", ticketsH.Descargar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

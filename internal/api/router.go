package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/inventory-system/internal/api/handler"
	"github.com/sweetshop/inventory-system/internal/api/middleware"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/service"
	"github.com/sweetshop/inventory-system/internal/infrastructure/config"
	mongodb "github.com/sweetshop/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/sweetshop/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The recorder hooks inventory mutations into the stock-event audit pipeline;
// pass nil to disable auditing.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, recorder service.StockRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sweetshop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	sweetRepo := redisdb.NewCachedSweetRepository(mongodb.NewSweetRepository(db), rdb, cfg.Redis.CacheTTL, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	catalogService := service.NewCatalogService(sweetRepo, log)
	inventoryService := service.NewInventoryService(sweetRepo, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	sweetHandler := handler.NewSweetHandler(catalogService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Catalog and inventory routes (authenticated) ---
	sweets := e.Group("/api/sweets", middleware.Auth(cfg.JWTSecret))

	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.GET("/:id", sweetHandler.Get)
	sweets.POST("/:id/purchase", inventoryHandler.Purchase)

	adminOnly := middleware.RBAC(string(domain.RoleAdmin))
	sweets.POST("", sweetHandler.Create, adminOnly)
	sweets.PUT("/:id", sweetHandler.Update, adminOnly)
	sweets.DELETE("/:id", sweetHandler.Delete, adminOnly)
	sweets.POST("/:id/restock", inventoryHandler.Restock, adminOnly)

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pimcentral/pim-api/docs"
	"github.com/pimcentral/pim-api/internal/api/handler"
	"github.com/pimcentral/pim-api/internal/api/middleware"
	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/service"
	"github.com/pimcentral/pim-api/internal/infrastructure/config"
	mongodb "github.com/pimcentral/pim-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pimcentral/pim-api/internal/infrastructure/db/redis"
	"github.com/pimcentral/pim-api/internal/infrastructure/storage"
)

// NewRouter builds the Echo instance with all dependencies wired and all
// routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pim"))

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	localizationRepo := mongodb.NewLocalizationRepository(db)
	variantRepo := mongodb.NewVariantRepository(db)
	imageRepo := mongodb.NewImageRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	countryRepo := redisdb.NewCountryCache(rdb, mongodb.NewCountryRepository(db), log)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(accountRepo, hasher, tokenService)

	imageStore, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	productService := service.NewProductService(service.ProductServiceDeps{
		Products:      productRepo,
		Localizations: localizationRepo,
		Variants:      variantRepo,
		Images:        imageRepo,
		Categories:    categoryRepo,
		Countries:     countryRepo,
		Store:         imageStore,
		Logger:        log,
	})
	catalogService := service.NewCatalogService(catalogRepo, productRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, cfg.DefaultCountry)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authenticated := middleware.Authenticate(tokenService, accountRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/token", authHandler.Token)

	products := v1.Group("/products", authenticated)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create, adminOnly)
	products.POST("/:id/images", productHandler.UploadImage, adminOnly)

	catalogs := v1.Group("/catalogs", authenticated)
	catalogs.GET("", catalogHandler.List)
	catalogs.POST("", catalogHandler.Create, adminOnly)
	catalogs.POST("/:id/products/:product_id", catalogHandler.AddProduct, adminOnly)

	// --- Uploaded images ---
	e.Static("/static/images", imageStore.Dir())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}

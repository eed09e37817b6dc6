package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/modavn/catalog_api/internal/cache"
	"github.com/modavn/catalog_api/internal/config"
	"github.com/modavn/catalog_api/internal/database"
	"github.com/modavn/catalog_api/internal/handler"
	"github.com/modavn/catalog_api/internal/middleware"
	"github.com/modavn/catalog_api/internal/repository"
	"github.com/modavn/catalog_api/internal/service"
	"github.com/modavn/catalog_api/internal/worker"
)

// main is the application entrypoint for the catalog API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting catalog api")

	// 3. Load message catalog
	msgs, err := config.LoadMessages(cfg.MessagesPath)
	if err != nil {
		log.Error().Err(err).Msg("message catalog load failed")
		fmt.Fprintf(os.Stderr, "message catalog load failed: %v\n", err)
		os.Exit(1)
	}

	// 4. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4c. Initialize filter-values cache
	filterCache := cache.NewFilterValuesCache(redisClient, cfg.FilterRefreshInterval*2)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	subProductRepo := repository.NewSubProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo, msgs)
	variantSvc := service.NewVariantService(subProductRepo, filterCache, msgs)
	promotionSvc := service.NewPromotionService(promotionRepo, msgs)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient),
		Catalog:   handler.NewCatalogHandler(catalogSvc, cfg.Page),
		Variant:   handler.NewVariantHandler(variantSvc),
		Promotion: handler.NewPromotionHandler(promotionSvc),
		Category:  handler.NewCategoryHandler(categoryRepo),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start workers
	go worker.NewFilterCacheWorker(variantSvc, cfg.FilterRefreshInterval).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Catalog   *handler.CatalogHandler
	Variant   *handler.VariantHandler
	Promotion *handler.PromotionHandler
	Category  *handler.CategoryHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	products := router.Group("/v1/products")
	{
		products.GET("", handlers.Catalog.ListProducts)
		products.GET("/all", handlers.Catalog.ListAllProducts)
		products.GET("/search", handlers.Catalog.SearchProducts)
		products.POST("/filter", handlers.Catalog.FilterProducts)
		products.GET("/filter-values", handlers.Variant.ListFilterValues)
		products.GET("/:id", handlers.Catalog.GetProduct)
		products.POST("", handlers.Catalog.CreateProduct)
		products.PUT("/:id", handlers.Catalog.UpdateProduct)
		products.DELETE("/:id", handlers.Catalog.DeleteProduct)
	}

	variants := router.Group("/v1/variants")
	{
		variants.POST("", handlers.Variant.CreateVariant)
		variants.PUT("/:id", handlers.Variant.UpdateVariant)
		variants.DELETE("/:id", handlers.Variant.DeleteVariant)
	}

	promotions := router.Group("/v1/promotions")
	{
		promotions.GET("", handlers.Promotion.ListPromotions)
		promotions.GET("/:id", handlers.Promotion.GetPromotion)
		promotions.POST("", handlers.Promotion.CreatePromotion)
		promotions.PUT("/:id", handlers.Promotion.UpdatePromotion)
		promotions.DELETE("/:id", handlers.Promotion.DeletePromotion)
	}

	categories := router.Group("/v1/categories")
	{
		categories.GET("", handlers.Category.ListCategories)
		categories.POST("", handlers.Category.CreateCategory)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

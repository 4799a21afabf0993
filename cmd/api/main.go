package main

// @title Search Service API
// @version 1.0.0
// @description Сервис разрешения локаций и фасетного поиска для маркетплейса недвижимости. Разбирает свободный ввод локаций в структурные выборы (город, район, баррио), подсказывает локации при вводе и выполняет поиск по объявлениям, агентствам и агентам.
// @description
// @description Основные возможности:
// @description - Разбор и кодирование токенов локаций, включая выбор 'весь город'
// @description - Подсказки локаций с приоритетом районов над барриос
// @description - Поиск в трёх доменах с кешем результатов и фоновым обновлением
// @description - Агрегированные оценки барриос и геокодирование адресов

// @contact.name API Support
// @contact.email support@habitaclick.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/habitaclick/search-service/docs/swagger"
	"github.com/habitaclick/search-service/internal/config"
	httpDelivery "github.com/habitaclick/search-service/internal/delivery/http"
	"github.com/habitaclick/search-service/internal/delivery/http/handler"
	"github.com/habitaclick/search-service/internal/infrastructure/geocoder"
	"github.com/habitaclick/search-service/internal/pkg/logger"
	"github.com/habitaclick/search-service/internal/repository/cache"
	"github.com/habitaclick/search-service/internal/repository/postgres"
	"github.com/habitaclick/search-service/internal/searchcache"
	"github.com/habitaclick/search-service/internal/taxonomy"
	"github.com/habitaclick/search-service/internal/usecase"
	"github.com/habitaclick/search-service/internal/worker"
	"github.com/habitaclick/search-service/internal/worker/refresh"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Search Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load location catalog
	tax, err := taxonomy.Default()
	if err != nil {
		log.Fatal("Failed to load location catalog", zap.Error(err))
	}
	log.Info("Location catalog loaded",
		zap.Strings("cities", tax.CitiesAvailable()))

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	propertyRepo := postgres.NewPropertyRepository(db)
	agencyRepo := postgres.NewAgencyRepository(db)
	agentRepo := postgres.NewAgentRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocodeRepo := geocoder.NewGeocoderClient(&cfg.Geocoder, log)

	log.Info("Repositories initialized")

	// 8. Result cache
	resultCache := searchcache.New(
		cfg.Cache.ResultStaleTime,
		cfg.Cache.ResultGCTime,
		cfg.Worker.RefreshQueueSize,
	)

	// 9. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(
		propertyRepo,
		agencyRepo,
		agentRepo,
		resultCache,
		tax,
		log,
		cfg.Search,
	)

	autocompleteUC := usecase.NewAutocompleteUseCase(tax, log)
	locationUC := usecase.NewLocationUseCase(tax, log)

	ratingUC := usecase.NewRatingUseCase(
		ratingRepo,
		cacheRepo,
		log,
		cfg.Cache.RatingsCacheTTL,
	)

	geocodeUC := usecase.NewGeocodeUseCase(
		geocodeRepo,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
	)

	log.Info("Use cases initialized")

	// 10. Initialize HTTP Handlers
	searchHandler := handler.NewSearchHandler(searchUC, tax, log)
	autocompleteHandler := handler.NewAutocompleteHandler(autocompleteUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)
	ratingHandler := handler.NewRatingHandler(ratingUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)

	log.Info("HTTP handlers initialized")

	// 11. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		searchHandler,
		autocompleteHandler,
		locationHandler,
		ratingHandler,
		geocodeHandler,
	)

	log.Info("HTTP server initialized")

	// 12. Background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.Enabled {
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(refresh.NewCacheRefreshWorker(
			resultCache,
			cfg.Worker.SweepInterval,
			log,
		))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 13. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 14. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop workers
	if workerManager != nil {
		if err := workerManager.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}
	workerCancel()

	log.Info("Server stopped successfully")
}

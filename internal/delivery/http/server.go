package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/habitaclick/search-service/internal/config"
	"github.com/habitaclick/search-service/internal/delivery/http/handler"
	"github.com/habitaclick/search-service/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	searchHandler       *handler.SearchHandler
	autocompleteHandler *handler.AutocompleteHandler
	locationHandler     *handler.LocationHandler
	ratingHandler       *handler.RatingHandler
	geocodeHandler      *handler.GeocodeHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	searchHandler *handler.SearchHandler,
	autocompleteHandler *handler.AutocompleteHandler,
	locationHandler *handler.LocationHandler,
	ratingHandler *handler.RatingHandler,
	geocodeHandler *handler.GeocodeHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Search Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		searchHandler:       searchHandler,
		autocompleteHandler: autocompleteHandler,
		locationHandler:     locationHandler,
		ratingHandler:       ratingHandler,
		geocodeHandler:      geocodeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Search routes
	api.Get("/search", s.searchHandler.Search)
	api.Get("/search/states", s.searchHandler.States)

	// Autocomplete
	api.Get("/autocomplete", s.autocompleteHandler.Suggest)

	// Location catalog routes
	api.Get("/locations/cities", s.locationHandler.Cities)
	api.Get("/locations/districts", s.locationHandler.Districts)
	api.Get("/locations/neighborhoods", s.locationHandler.Neighborhoods)
	api.Get("/locations/resolve", s.locationHandler.Resolve)

	// Neighborhood ratings
	api.Get("/neighborhoods/:city/:name/rating", s.ratingHandler.GetRating)

	// Geocoding
	api.Post("/geocode", s.geocodeHandler.Geocode)
	api.Get("/geocode/marker", s.geocodeHandler.Marker)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App - доступ к Fiber приложению (для тестов)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}

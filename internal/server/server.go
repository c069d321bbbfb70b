// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"sharebite/internal/config"
	"sharebite/internal/middleware"
	"sharebite/internal/models"
	"sharebite/internal/storage"
	"sharebite/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	blobs          storage.Blobs
	store          *store.Store
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	blobs, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage connection failed: %w", err)
	}

	st, err := store.Open(ctx, blobs)
	if err != nil {
		return nil, fmt.Errorf("store load failed: %w", err)
	}

	return NewServerWithDeps(cfg, blobs, st), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes storage and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, blobs storage.Blobs, st *store.Store) *Server {
	return &Server{
		config:         cfg,
		blobs:          blobs,
		store:          st,
		promMiddleware: fiberprometheus.New("sharebite-api"),
	}
}

// Store exposes the server's data store for bootstrap-time seeding.
func (s *Server) Store() *store.Store {
	return s.store
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// User routes
	users := api.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.GetUsers)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	users.Get("/:id/posts", s.GetUserPosts)
	users.Get("/:id/requests", s.GetUserRequests)
	users.Get("/:id/orders", s.GetUserOrders)
	users.Patch("/:id", s.UpdateUser)
	users.Get("/:id", s.GetUser)

	// Food post routes
	posts := api.Group("/posts")
	posts.Post("/", s.CreateFoodPost)
	posts.Get("/", s.GetFoodPosts)
	posts.Get("/search", s.SearchFoodPosts)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	posts.Get("/:id/requests", s.GetPostRequests)
	posts.Post("/:id/views", s.IncrementPostViews)
	posts.Patch("/:id", s.UpdateFoodPost)
	posts.Delete("/:id", s.DeleteFoodPost)
	posts.Get("/:id", s.GetFoodPost)

	// Request routes
	requests := api.Group("/requests")
	requests.Post("/", s.CreateRequest)
	requests.Get("/", s.GetRequests)
	requests.Patch("/:id/status", s.UpdateRequestStatus)

	// Order routes
	orders := api.Group("/orders")
	orders.Post("/", s.CreateOrder)
	orders.Get("/", s.GetOrders)
	orders.Patch("/:id/status", s.UpdateOrderStatus)
	orders.Patch("/:id", s.UpdateOrder)
	orders.Get("/:id", s.GetOrder)

	// Data utilities
	api.Get("/stats", s.GetStats)
	api.Get("/export", s.ExportData)
	api.Post("/import", s.ImportData)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The storage backend is
// probed with a read; a backend that cannot serve reads cannot serve the API.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storageStatus := "healthy"
	if _, _, err := s.blobs.Get(ctx, storage.KeyUsers); err != nil {
		storageStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if storageStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "ShareBite",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"storage": storageStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "ShareBite API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

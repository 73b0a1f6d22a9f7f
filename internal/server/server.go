// Package server contains the HTTP handlers for the public content API.
package server

import (
	"context"
	"fmt"
	"time"

	"toolhaven/internal/cache"
	"toolhaven/internal/config"
	"toolhaven/internal/database"
	"toolhaven/internal/middleware"
	"toolhaven/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	store          *cache.Store
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	categoryRepo   repository.CategoryRepository
	tagRepo        repository.TagRepository
	toolRepo       repository.ToolRepository
	postRepo       repository.PostRepository
	dealRepo       repository.DealRepository
	comparisonRepo repository.ComparisonRepository
}

// NewServer connects the database and Redis from config and builds a Server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	redisClient := cache.Connect(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Used by tests and by bootstrap code that manages connections itself.
// redisClient may be nil, in which case responses are never cached.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		store:          cache.NewStore(redisClient),
		promMiddleware: middleware.InitMetrics("toolhaven-api"),
		categoryRepo:   repository.NewCategoryRepository(db),
		tagRepo:        repository.NewTagRepository(db),
		toolRepo:       repository.NewToolRepository(db),
		postRepo:       repository.NewPostRepository(db),
		dealRepo:       repository.NewDealRepository(db),
		comparisonRepo: repository.NewComparisonRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Logging runs after requestid so records carry the request ID.
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/categories", s.ListCategories)
	api.Get("/tools", s.ListTools)
	api.Get("/tools/:slug", s.GetTool)
	api.Get("/posts", s.ListPosts)
	api.Get("/posts/:slug", s.GetPost)
	api.Get("/deals", s.ListDeals)
	api.Get("/comparisons", s.ListComparisons)
	api.Get("/comparisons/:slug", s.GetComparison)
}

// HealthCheck reports database and cache connectivity.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok", "cache": "disabled"}

	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded", "database": "unreachable",
		})
	}
	status["database"] = "ok"

	if s.redis != nil {
		if err := s.redis.Ping(c.UserContext()).Err(); err != nil {
			status["cache"] = "unreachable"
		} else {
			status["cache"] = "ok"
		}
	}

	return c.JSON(status)
}

// Start builds the Fiber app and listens on the configured port.
func (s *Server) Start() error {
	s.app = fiber.New(fiber.Config{
		AppName:      "toolhaven",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	s.SetupMiddleware(s.app)
	s.SetupRoutes(s.app)

	middleware.Logger.Info("server listening", "port", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the HTTP server and closes connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Warn("closing Redis client", "error", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}

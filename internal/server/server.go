// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "mindcanva/docs" // swagger docs
	"mindcanva/internal/cache"
	"mindcanva/internal/config"
	"mindcanva/internal/database"
	"mindcanva/internal/middleware"
	"mindcanva/internal/models"
	"mindcanva/internal/repository"
	"mindcanva/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	artworkRepo  repository.ArtworkRepository
	likeRepo     repository.LikeRepository
	favoriteRepo repository.FavoriteRepository

	likeService     *service.LikeService
	favoriteService *service.FavoriteService
	profileService  *service.ProfileService
	artistService   *service.ArtistService
	artworkService  *service.ArtworkService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps wires the server from externally constructed handles.
// Tests use this with an in-memory database and no Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Initialize Prometheus metrics
	prom := middleware.InitMetrics("mindcanva-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		artworkRepo:    artworkRepo,
		likeRepo:       likeRepo,
		favoriteRepo:   favoriteRepo,
	}
	server.likeService = service.NewLikeService(likeRepo, artworkRepo)
	server.favoriteService = service.NewFavoriteService(favoriteRepo)
	server.profileService = service.NewProfileService(userRepo, artworkRepo)
	server.artistService = service.NewArtistService(artworkRepo)
	server.artworkService = service.NewArtworkService(artworkRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// OpenTelemetry span per request
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and caller identity
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
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
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Users and profile sync
	api.Post("/users", s.CreateUser)
	api.Put("/users/profile", s.SyncProfile)

	// Artwork catalog. Static segments are registered before /artworks/:id
	// so they are not swallowed by the id parameter.
	api.Get("/artworks", s.ListArtworks)
	api.Get("/artworks/latest", s.LatestArtworks)
	api.Get("/artworks/category/:category", s.ArtworksByCategory)
	api.Get("/artworks/artist/:email", s.ArtistInfo)
	api.Post("/artworks", s.CreateArtwork)
	api.Get("/artworks/:id", s.GetArtwork)
	api.Put("/artworks/:id", s.UpdateArtwork)
	api.Delete("/artworks/:id", s.DeleteArtwork)
	api.Get("/my-artworks", s.MyArtworks)
	api.Get("/search", s.SearchArtworks)
	api.Get("/categories", s.Categories)

	// Likes
	api.Patch("/artworks/:id/like",
		middleware.RateLimit(s.redis, 30, time.Minute, "like"),
		s.LikeArtwork)
	api.Get("/likes/check", s.CheckLiked)

	// Favorites
	api.Post("/favorites", s.AddFavorite)
	api.Get("/favorites", s.ListFavorites)
	api.Get("/favorites/check", s.CheckFavorited)
	api.Delete("/favorites/:id", s.RemoveFavorite)

	// Leaderboard
	api.Get("/artists/top", s.TopArtists)
}

// HealthCheck handles basic health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// Redis is a best-effort cache; an absent client degrades, it does not
	// fail readiness.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "mindCanva Server is running!",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start runs the HTTP server until Shutdown or a fatal listen error.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "mindCanva API",
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

// Shutdown gracefully shuts down the server and closes its handles.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close database connection
	if err := database.Close(s.db); err != nil {
		log.Printf("error closing sql DB: %v", err)
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}

// Package server contains the HTTP handlers for the content API.
package server

import (
	"context"
	"errors"
	"log"
	"time"

	"soulforge/internal/bootstrap"
	"soulforge/internal/config"
	"soulforge/internal/content"
	"soulforge/internal/imagegen"
	"soulforge/internal/mailer"
	"soulforge/internal/middleware"
	"soulforge/internal/models"
	"soulforge/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	store          storage.Store
	content        *content.ContentStore
	mailer         mailer.Mailer
	imageGen       imagegen.Generator
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates the production server: it opens storage, seeds an empty
// store, loads content, and registers the Prometheus HTTP middleware.
func NewServer(cfg *config.Config) (*Server, error) {
	st, cs, err := bootstrap.InitRuntime(context.Background(), cfg, bootstrap.Options{SeedDefaults: true})
	if err != nil {
		return nil, err
	}

	srv := NewServerWithDeps(cfg, st, cs, mailer.NewSMTP(cfg), imagegen.New(cfg))
	srv.promMiddleware = middleware.InitMetrics("soulforge-api")
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Used by tests, which skip Prometheus registration; the default registry
// only tolerates one registration per process.
func NewServerWithDeps(cfg *config.Config, st storage.Store, cs *content.ContentStore, m mailer.Mailer, g imagegen.Generator) *Server {
	middleware.InitMiddleware(cfg)
	return &Server{
		config:   cfg,
		store:    st,
		content:  cs,
		mailer:   m,
		imageGen: g,
	}
}

// App builds a Fiber app with middleware and routes configured but does not
// listen. Tests drive it through app.Test.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Soulforge Content API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and username
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
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

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", s.Login)
	authGroup.Post("/logout", middleware.OptionalAuth, s.Logout)
	authGroup.Get("/session", middleware.AuthRequired, s.Session)

	// Persona routes
	personas := api.Group("/personas")
	personas.Get("/", s.GetPersonas)
	personas.Get("/:type", s.GetPersona)
	personas.Put("/:type", middleware.AuthRequired, s.UpdatePersona)
	personas.Post("/:type/banner", middleware.AuthRequired, middleware.RequireRole(models.RoleEditor), s.GenerateBanner)

	// Echo routes hang off the chapter they belong to.
	chapters := personas.Group("/:type/writings/:writingId/chapters/:chapterId")
	chapters.Post("/echoes", s.AddEcho)
	chapters.Post("/echoes/:parentId/replies", s.AddEchoReply)
	chapters.Delete("/echoes/:commentId", middleware.AuthRequired, s.DeleteEcho)

	// Global settings
	api.Get("/global", s.GetGlobal)
	api.Put("/global", middleware.AuthRequired, s.UpdateGlobal)

	// About tabs
	about := api.Group("/about")
	about.Get("/", s.GetAbout)
	about.Get("/:tab", s.GetAboutTab)
	about.Put("/:tab", middleware.AuthRequired, s.UpdateAboutTab)

	// Derived views
	api.Get("/feed", s.GetFeed)

	// External collaborators
	api.Post("/contact", s.Contact)
	api.Post("/media/url", s.ProcessMediaURL)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports whether the blob store answers reads.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storageStatus := "healthy"
	if _, err := s.store.Get(ctx, storage.KeyGlobal); err != nil && !errors.Is(err, storage.ErrNotFound) {
		storageStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if storageStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"storage": storageStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server.
func (s *Server) Start() error {
	s.app = s.App()
	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}
	if err := s.store.Close(); err != nil {
		log.Printf("error closing storage: %v", err)
	}
	log.Println("Server shutdown complete")
	return nil
}

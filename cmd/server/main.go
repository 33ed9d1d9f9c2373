package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/localnerve/octofit-tracker/internal/handlers"
	"github.com/localnerve/octofit-tracker/internal/logging"
	"github.com/localnerve/octofit-tracker/internal/middleware"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/types"
	"github.com/localnerve/octofit-tracker/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "github.com/localnerve/octofit-tracker/docs/api" // Swagger docs
)

// @title OctoFit Tracker API
// @version 1.0.0
// @description Users, teams, activities, leaderboard and workouts for the OctoFit demo

// @contact.name API Support
// @contact.url https://github.com/localnerve/octofit-tracker
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8000
// @BasePath /api
// @schemes http https

func main() {
	if err := config.LoadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		logrus.Fatalf("Failed to load env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedOnStart {
		if _, err := services.Reset(db); err != nil {
			logger.Fatalf("Failed to seed database: %v", err)
		}
	}

	app := newApp(cfg, db, logger)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	logger.WithField("port", cfg.Port).Info("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}

	logger.Info("Server stopped")
}

// newApp wires middleware and routes. The collection routes are served under /api and at the root.
func newApp(cfg *config.Config, db *gorm.DB, logger *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("octofit")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	health := &handlers.HealthHandler{Config: cfg, DB: db}
	app.Get("/health", health.Health)

	h := &handlers.Handler{DB: db, BaseURL: cfg.BaseURL}

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	h.Routes(api)

	h.Routes(app)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	return app
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "internal"

	var fe *fiber.Error
	var ce *types.CustomError
	switch {
	case errors.As(err, &ce):
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
		errorType = "http"
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

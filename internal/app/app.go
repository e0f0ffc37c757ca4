// Package app wires configuration, storage and transport into a Fiber app.
package app

import (
	"errors"

	"ctws/internal/auth"
	"ctws/internal/config"
	"ctws/internal/events"
	"ctws/internal/handlers"
	"ctws/internal/metrics"
	"ctws/internal/middleware"
	"ctws/internal/repositories"
	"ctws/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the long-lived resources the app is built from. Publisher may be
// nil, which disables domain events.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Log       *logrus.Logger
	Publisher events.Publisher
}

// New builds the Fiber app with every route registered.
func New(deps Deps) (*fiber.App, error) {
	cfg := deps.Config
	log := deps.Log

	gate, err := auth.NewGate(cfg.AuthToken, cfg.AuthTokenHash)
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}
	emitter := events.NewEmitter(deps.Publisher, log.WithField("component", "events"), m)

	// Initialize Repositories
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	mealRepo := repositories.NewGORMMealRepository(deps.DB)
	credsRepo := repositories.NewGORMTelegramCredentialsRepository(deps.DB)

	// Initialize Services
	userService := services.NewUserService(userRepo, emitter, m)
	mealService := services.NewMealService(mealRepo, userRepo, emitter, m)
	credsService := services.NewTelegramCredentialsService(credsRepo, userRepo, emitter, m)

	// Initialize Handlers
	handlerLog := log.WithField("component", "http")
	userHandler := handlers.NewUserHandler(userService, credsService, handlerLog)
	mealHandler := handlers.NewMealHandler(mealService, handlerLog)
	healthHandler := handlers.NewHealthHandler(deps.DB, handlerLog)

	app := fiber.New(fiber.Config{
		AppName:       "ctws",
		StrictRouting: true,
		ErrorHandler:  errorHandler(handlerLog),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(handlerLog))
	if m != nil {
		app.Use(middleware.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	api := app.Group(cfg.APIPrefix)

	// Public routes
	healthHandler.RegisterRoutes(api)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(gate, handlerLog))
	healthHandler.RegisterProtectedRoutes(protected)
	mealHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	return app, nil
}

// errorHandler renders errors that escaped the handlers, such as unknown
// routes or recovered panics, in the same JSON shape as handler errors.
func errorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
		}

		return c.Status(code).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}

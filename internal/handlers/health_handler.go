package handlers

import (
	"context"
	"time"

	"ctws/internal/database"
	"ctws/internal/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandler serves the liveness probe and the echo endpoint.
type HealthHandler struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewHealthHandler(db *gorm.DB, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// RegisterRoutes registers the public health route.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// RegisterProtectedRoutes registers the echo route behind authentication.
func (h *HealthHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/echo/", h.HandleEcho)
}

// HandleHealth reports whether the database answers a ping.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		h.log.WithError(err).Warn("health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unhealthy",
			"database": "unreachable",
			"error":    err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "ok",
	})
}

// HandleEcho returns the posted message unchanged.
func (h *HealthHandler) HandleEcho(c *fiber.Ctx) error {
	var req schemas.Echo
	if err := parseBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}
	if err := schemas.Validate(req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(req)
}

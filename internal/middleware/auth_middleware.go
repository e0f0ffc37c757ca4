package middleware

import (
	"ctws/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthRequired is a Fiber middleware that rejects requests without the shared
// bearer token. It runs before any other processing of protected routes.
func AuthRequired(gate *auth.Gate, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.VerifyHeader(c.Get(fiber.HeaderAuthorization)); err != nil {
			log.WithFields(logrus.Fields{
				"path":       c.Path(),
				"request_id": requestID(c),
			}).WithError(err).Warn("unauthorized request")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   err.Error(),
			})
		}
		return c.Next()
	}
}

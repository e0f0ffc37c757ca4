package middleware

import (
	"time"

	"ctws/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request counts and latency labelled by route pattern.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.RequestStarted()

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		m.RequestFinished(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

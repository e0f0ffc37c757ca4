package handlers

import (
	"errors"
	"strconv"

	"ctws/internal/repositories"
	"ctws/internal/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError writes the JSON error body matching err's category.
func respondError(c *fiber.Ctx, log logrus.FieldLogger, err error) error {
	var verr *schemas.ValidationError
	switch {
	case errors.As(err, &verr) && errors.Is(err, schemas.ErrUnprocessable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": verr.Message,
			"errors":  verr.Fields,
		})
	case errors.Is(err, schemas.ErrBadRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Bad request",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	case errors.Is(err, repositories.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Conflict",
			"error":   err.Error(),
		})
	}

	log.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).WithError(err).Error("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// parseBody decodes the JSON body into out. Malformed bodies are unprocessable.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return schemas.Unprocessable("body", err.Error())
	}
	return nil
}

// parseQuery decodes the query string into out.
func parseQuery(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return schemas.Unprocessable("query", err.Error())
	}
	return nil
}

// parseID reads a numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, schemas.Unprocessable(name, "must be a non-negative integer")
	}
	return uint(id), nil
}

// handlers/respond.go - shared response helpers
package handlers

import (
	"errors"
	"strconv"

	"gamenight/apperror"

	"github.com/gofiber/fiber/v2"
)

// writeError maps a service error to its status code. Error bodies are
// always {"error": "<message>"}; raw store errors never reach the client.
func writeError(c *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrConflict):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperror.Validation("invalid ID %q", c.Params("id"))
	}
	return uint(id), nil
}

// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"errors"

	"sharebite/internal/models"

	"github.com/gofiber/fiber/v2"
)

// mapStoreError converts a store error into the appropriate HTTP status code.
func mapStoreError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR":
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}

// invalidBody writes a 400 response for an unparseable request body.
func invalidBody(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusBadRequest,
		models.NewValidationError("Invalid request body"))
}

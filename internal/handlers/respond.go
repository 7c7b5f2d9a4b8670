package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blog/internal/apperrors"
)

// clientFault reports whether err belongs to the domain taxonomy that maps
// to a 400 response. Anything else is a server fault.
func clientFault(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrUnauthorized) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrConflict)
}

// respondError translates a service failure into an HTTP response. Every
// domain failure is a 400 with a human-readable message; not-found and
// unauthorized are deliberately not distinguished by status code.
func respondError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	if clientFault(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// respondValidation maps request-shape validation failures to a 400 with
// per-field messages.
func respondValidation(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// paramID parses a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, apperrors.ErrValidation)
	}
	return uint(id), nil
}

package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the custom "notblank" rule used by
// Article and Comment. "required" alone accepts whitespace-only strings;
// notblank rejects them so a blank title or content never reaches storage.
func NewValidator() *validator.Validate {
	v := validator.New()
	// The closure never returns an error, so RegisterValidation cannot fail.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blog/internal/models"
	"blog/internal/services"
)

// UserHandler handles HTTP requests for account lifecycle.
type UserHandler struct {
	auth     *services.AuthService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{
		auth:     auth,
		validate: models.NewValidator(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleSignup)
	router.Delete("/signout", h.HandleSignout)
}

// HandleSignup registers a new account.
func (h *UserHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signup request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user, err := h.auth.Signup(req)
	if err != nil {
		return respondError(c, "Cannot sign up with already existing email", err)
	}
	return c.JSON(user.ToResponse())
}

// HandleSignout removes the acting user's own account, cascading to their
// articles and comments.
func (h *UserHandler) HandleSignout(c *fiber.Ctx) error {
	var req models.CredentialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing signout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.auth.Signout(req); err != nil {
		return respondError(c, "Cannot sign out with invalid account", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

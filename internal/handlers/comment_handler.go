package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blog/internal/models"
	"blog/internal/services"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service  *services.CommentService
	validate *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{
		service:  service,
		validate: models.NewValidator(),
	}
}

// RegisterRoutes registers the comment routes with the Fiber app.
func (h *CommentHandler) RegisterRoutes(router fiber.Router) {
	commentRoutes := router.Group("/comment")
	commentRoutes.Get("/:articleId", h.HandleGetComments)
	commentRoutes.Post("/:articleId", h.HandleCreateComment)
	commentRoutes.Put("/:articleId/:commentId", h.HandleUpdateComment)
	commentRoutes.Delete("/:articleId/:commentId", h.HandleDeleteComment)
}

// HandleGetComments retrieves all comments under one article.
func (h *CommentHandler) HandleGetComments(c *fiber.Ctx) error {
	articleID, err := paramID(c, "articleId")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}

	comments, err := h.service.GetByArticle(articleID)
	if err != nil {
		return respondError(c, "Cannot retrieve comments of non-existing article", err)
	}
	return c.JSON(comments)
}

// HandleCreateComment attaches a comment to an article; the acting user
// becomes its owner.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	articleID, err := paramID(c, "articleId")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	comment, err := h.service.Create(articleID, req)
	if err != nil {
		return respondError(c, "Cannot create comment with invalid account", err)
	}
	return c.JSON(comment)
}

// HandleUpdateComment updates a comment, owner-restricted.
func (h *CommentHandler) HandleUpdateComment(c *fiber.Ctx) error {
	articleID, err := paramID(c, "articleId")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return respondError(c, "Invalid comment id", err)
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	comment, err := h.service.Update(articleID, commentID, req)
	if err != nil {
		return respondError(c, "Only author of the comment can edit it", err)
	}
	return c.JSON(comment)
}

// HandleDeleteComment deletes a comment, owner-restricted. The path's
// article id must match the comment's parent article.
func (h *CommentHandler) HandleDeleteComment(c *fiber.Ctx) error {
	articleID, err := paramID(c, "articleId")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return respondError(c, "Invalid comment id", err)
	}

	var req models.CredentialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing comment delete request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.Delete(articleID, commentID, req); err != nil {
		return respondError(c, "Only author of comment can remove it", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blog/internal/models"
	"blog/internal/services"
)

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service  *services.ArticleService
	validate *validator.Validate
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(service *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		service:  service,
		validate: models.NewValidator(),
	}
}

// RegisterRoutes registers the article routes with the Fiber app.
func (h *ArticleHandler) RegisterRoutes(router fiber.Router) {
	articleRoutes := router.Group("/article")
	articleRoutes.Get("/", h.HandleGetArticles)
	articleRoutes.Get("/:id", h.HandleGetArticleByID)
	articleRoutes.Post("/", h.HandleCreateArticle)
	articleRoutes.Put("/:id", h.HandleUpdateArticle)
	articleRoutes.Delete("/:id", h.HandleDeleteArticle)
}

// HandleGetArticles retrieves all articles.
func (h *ArticleHandler) HandleGetArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetAll()
	if err != nil {
		return respondError(c, "Could not retrieve articles", err)
	}
	return c.JSON(articles)
}

// HandleGetArticleByID retrieves a single article.
func (h *ArticleHandler) HandleGetArticleByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}

	article, err := h.service.GetByID(id)
	if err != nil {
		return respondError(c, "Cannot retrieve non-existing article", err)
	}
	return c.JSON(article)
}

// HandleCreateArticle creates an article owned by the resolved user.
func (h *ArticleHandler) HandleCreateArticle(c *fiber.Ctx) error {
	var req models.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing article request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	article, err := h.service.Create(req)
	if err != nil {
		return respondError(c, "Cannot create article with invalid account", err)
	}
	return c.JSON(article)
}

// HandleUpdateArticle updates an article, owner-restricted.
func (h *ArticleHandler) HandleUpdateArticle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}

	var req models.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing article request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	article, err := h.service.Update(id, req)
	if err != nil {
		return respondError(c, "Cannot edit article with invalid account", err)
	}
	return c.JSON(article)
}

// HandleDeleteArticle deletes an article, owner-restricted.
func (h *ArticleHandler) HandleDeleteArticle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "Invalid article id", err)
	}

	var req models.CredentialRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing article delete request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.service.Delete(id, req); err != nil {
		return respondError(c, "Only author of article can remove it", err)
	}
	return c.SendStatus(fiber.StatusOK)
}

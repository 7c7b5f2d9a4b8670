package repositories

import "blog/internal/models"

// ArticleRepository defines the interface for article data access.
type ArticleRepository interface {
	GetAll() ([]models.Article, error)
	GetByID(id uint) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	// Delete removes the article and its comments in one transaction.
	Delete(id uint) error
}

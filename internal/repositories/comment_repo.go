package repositories

import "blog/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	GetAll() ([]models.Comment, error)
	GetByArticle(articleID uint) ([]models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id uint) error
}

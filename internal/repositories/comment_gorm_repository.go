package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blog/internal/apperrors"
	"blog/internal/models"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// GetAll retrieves all comments from the database.
func (r *GORMCommentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all comments: %w", err)
	}
	return comments, nil
}

// GetByArticle retrieves all comments under one article.
func (r *GORMCommentRepository) GetByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("article_id = ?", articleID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to get comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

// GetByID retrieves a single comment by its ID from the database.
func (r *GORMCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get comment by ID %d: %w", id, err)
	}
	return &comment, nil
}

// Create inserts a new comment. The generated id is written back into comment.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// Update writes the content of an existing comment. The owner and parent
// article references are immutable. A missing row is reported, never
// upserted.
func (r *GORMCommentRepository) Update(comment *models.Comment) error {
	res := r.db.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Select("content").
		Updates(comment)
	if res.Error != nil {
		return fmt.Errorf("failed to update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", comment.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes a comment by its ID from the database.
func (r *GORMCommentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

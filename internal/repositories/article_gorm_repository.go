package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blog/internal/apperrors"
	"blog/internal/models"
)

// GORMArticleRepository is a GORM implementation of ArticleRepository.
type GORMArticleRepository struct {
	db *gorm.DB
}

// NewGORMArticleRepository creates a new instance of GORMArticleRepository.
func NewGORMArticleRepository(db *gorm.DB) *GORMArticleRepository {
	return &GORMArticleRepository{
		db: db,
	}
}

// GetAll retrieves all articles from the database.
func (r *GORMArticleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all articles: %w", err)
	}
	return articles, nil
}

// GetByID retrieves a single article by its ID from the database.
func (r *GORMArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("article %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get article by ID %d: %w", id, err)
	}
	return &article, nil
}

// Create inserts a new article. The generated id is written back into article.
func (r *GORMArticleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// Update writes the content fields of an existing article. Only title and
// content are touched; the owner reference is immutable. A missing row is
// reported, never upserted.
func (r *GORMArticleRepository) Update(article *models.Article) error {
	res := r.db.Model(&models.Article{}).
		Where("id = ?", article.ID).
		Select("title", "content").
		Updates(article)
	if res.Error != nil {
		return fmt.Errorf("failed to update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// An UPDATE against a missing row is not an error to GORM,
		// so we check RowsAffected.
		return fmt.Errorf("article %d: %w", article.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes an article and its comments in one transaction.
func (r *GORMArticleRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Article{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("article %d: %w", id, apperrors.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}
	return nil
}

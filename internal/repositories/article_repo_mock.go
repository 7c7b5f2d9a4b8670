package repositories

import (
	"fmt"
	"sync"

	"blog/internal/apperrors"
	"blog/internal/models"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository.
type MockArticleRepository struct {
	articles map[uint]models.Article
	nextID   uint
	mu       sync.RWMutex
}

// NewMockArticleRepository creates a new instance of MockArticleRepository.
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[uint]models.Article),
		nextID:   1,
	}
}

// GetAll returns all articles.
func (r *MockArticleRepository) GetAll() ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articleList := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articleList = append(articleList, a)
	}
	return articleList, nil
}

// GetByID returns an article by its ID.
func (r *MockArticleRepository) GetByID(id uint) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, fmt.Errorf("article %d: %w", id, apperrors.ErrNotFound)
	}
	return &article, nil
}

// Create adds a new article, assigning the next generated id.
func (r *MockArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID == 0 {
		article.ID = r.nextID
		r.nextID++
	}
	r.articles[article.ID] = *article
	return nil
}

// Update modifies an existing article.
func (r *MockArticleRepository) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return fmt.Errorf("article %d: %w", article.ID, apperrors.ErrNotFound)
	}
	r.articles[article.ID] = *article
	return nil
}

// Delete removes an article by its ID.
func (r *MockArticleRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return fmt.Errorf("article %d: %w", id, apperrors.ErrNotFound)
	}
	delete(r.articles, id)
	return nil
}

package repositories

import (
	"fmt"
	"sync"

	"blog/internal/apperrors"
	"blog/internal/models"
)

// MockCommentRepository is an in-memory implementation of CommentRepository.
type MockCommentRepository struct {
	comments map[uint]models.Comment
	nextID   uint
	mu       sync.RWMutex
}

// NewMockCommentRepository creates a new instance of MockCommentRepository.
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[uint]models.Comment),
		nextID:   1,
	}
}

// GetAll returns all comments.
func (r *MockCommentRepository) GetAll() ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commentList := make([]models.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		commentList = append(commentList, c)
	}
	return commentList, nil
}

// GetByArticle returns all comments under one article.
func (r *MockCommentRepository) GetByArticle(articleID uint) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var commentList []models.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			commentList = append(commentList, c)
		}
	}
	return commentList, nil
}

// GetByID returns a comment by its ID.
func (r *MockCommentRepository) GetByID(id uint) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %d: %w", id, apperrors.ErrNotFound)
	}
	return &comment, nil
}

// Create adds a new comment, assigning the next generated id.
func (r *MockCommentRepository) Create(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == 0 {
		comment.ID = r.nextID
		r.nextID++
	}
	r.comments[comment.ID] = *comment
	return nil
}

// Update modifies an existing comment.
func (r *MockCommentRepository) Update(comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[comment.ID]; !ok {
		return fmt.Errorf("comment %d: %w", comment.ID, apperrors.ErrNotFound)
	}
	r.comments[comment.ID] = *comment
	return nil
}

// Delete removes a comment by its ID.
func (r *MockCommentRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment %d: %w", id, apperrors.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

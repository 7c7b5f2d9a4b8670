package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"blog/internal/apperrors"
	"blog/internal/models"
	"blog/internal/repositories"
)

// CommentService handles business logic related to comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	auth        *AuthService
	mq          EventPublisher
	validate    *validator.Validate
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository, auth *AuthService, mq EventPublisher) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		auth:        auth,
		mq:          mq,
		validate:    models.NewValidator(),
	}
}

// GetByArticle retrieves all comments under one article.
func (s *CommentService) GetByArticle(articleID uint) ([]models.CommentResponse, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetByArticle(articleID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		owner, err := s.userRepo.GetByID(comments[i].UserID)
		if err != nil {
			return nil, fmt.Errorf("owner of comment missing: %w", err)
		}
		responses = append(responses, comments[i].ToResponse(owner.Email))
	}
	return responses, nil
}

// Create resolves the acting user and attaches a new comment to the given
// article. Any authenticated user may comment on any article.
func (s *CommentService) Create(articleID uint, req models.CommentRequest) (models.CommentResponse, error) {
	user, err := s.auth.Resolve(req.Email, req.Password)
	if err != nil {
		return models.CommentResponse{}, err
	}
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return models.CommentResponse{}, err
	}

	comment := &models.Comment{
		Content:   req.Content,
		UserID:    user.ID,
		ArticleID: article.ID,
	}
	if err := s.validate.Struct(comment); err != nil {
		return models.CommentResponse{}, fmt.Errorf("comment with empty content: %w", apperrors.ErrValidation)
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return models.CommentResponse{}, err
	}

	publishEvent(s.mq, "comment.created", map[string]interface{}{
		"comment_id": comment.ID,
		"article_id": article.ID,
		"user_id":    user.ID,
	})
	return comment.ToResponse(user.Email), nil
}

// Update edits an existing comment. Only the comment's owner (not the
// article's) may do so, and the comment must belong to the given article.
func (s *CommentService) Update(articleID, commentID uint, req models.CommentRequest) (models.CommentResponse, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return models.CommentResponse{}, err
	}
	if comment.ArticleID != articleID {
		return models.CommentResponse{}, fmt.Errorf("comment %d under article %d: %w", commentID, articleID, apperrors.ErrNotFound)
	}
	user, err := s.auth.Authorize(comment.UserID, req.Email, req.Password)
	if err != nil {
		return models.CommentResponse{}, err
	}

	comment.Content = req.Content
	if err := s.validate.Struct(comment); err != nil {
		return models.CommentResponse{}, fmt.Errorf("comment with empty content: %w", apperrors.ErrValidation)
	}
	if err := s.commentRepo.Update(comment); err != nil {
		return models.CommentResponse{}, err
	}

	publishEvent(s.mq, "comment.updated", map[string]interface{}{
		"comment_id": comment.ID,
		"article_id": comment.ArticleID,
		"user_id":    user.ID,
	})
	return comment.ToResponse(user.Email), nil
}

// Delete removes a comment. The article id in the path must match the
// comment's parent; a mismatch fails before credentials are even checked.
func (s *CommentService) Delete(articleID, commentID uint, req models.CredentialRequest) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment.ArticleID != articleID {
		return fmt.Errorf("comment %d under article %d: %w", commentID, articleID, apperrors.ErrNotFound)
	}
	user, err := s.auth.Authorize(comment.UserID, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	publishEvent(s.mq, "comment.deleted", map[string]interface{}{
		"comment_id": commentID,
		"article_id": articleID,
		"user_id":    user.ID,
	})
	return nil
}

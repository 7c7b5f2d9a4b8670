package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"blog/internal/apperrors"
	"blog/internal/models"
	"blog/internal/repositories"
)

// ArticleService handles business logic related to articles.
type ArticleService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	auth        *AuthService
	mq          EventPublisher
	validate    *validator.Validate
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository, auth *AuthService, mq EventPublisher) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		auth:        auth,
		mq:          mq,
		validate:    models.NewValidator(),
	}
}

// GetAll retrieves all articles in their public response shape.
func (s *ArticleService) GetAll() ([]models.ArticleResponse, error) {
	articles, err := s.articleRepo.GetAll()
	if err != nil {
		return nil, err
	}

	responses := make([]models.ArticleResponse, 0, len(articles))
	for i := range articles {
		email, err := s.ownerEmail(articles[i].UserID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, articles[i].ToResponse(email))
	}
	return responses, nil
}

// GetByID retrieves a single article in its public response shape.
func (s *ArticleService) GetByID(id uint) (models.ArticleResponse, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return models.ArticleResponse{}, err
	}
	email, err := s.ownerEmail(article.UserID)
	if err != nil {
		return models.ArticleResponse{}, err
	}
	return article.ToResponse(email), nil
}

// Create resolves the acting user from the request credentials and creates
// an article owned by them. Blank title or content fails with ErrValidation
// before anything reaches storage.
func (s *ArticleService) Create(req models.ArticleRequest) (models.ArticleResponse, error) {
	user, err := s.auth.Resolve(req.Email, req.Password)
	if err != nil {
		return models.ArticleResponse{}, err
	}

	article := &models.Article{
		Title:   req.Title,
		Content: req.Content,
		UserID:  user.ID,
	}
	if err := s.validate.Struct(article); err != nil {
		return models.ArticleResponse{}, fmt.Errorf("article with empty title or content: %w", apperrors.ErrValidation)
	}
	if err := s.articleRepo.Create(article); err != nil {
		return models.ArticleResponse{}, err
	}

	publishEvent(s.mq, "article.created", map[string]interface{}{
		"article_id": article.ID,
		"user_id":    user.ID,
	})
	return article.ToResponse(user.Email), nil
}

// Update edits an existing article. Only the owner may do so, and only the
// content fields change; the owner reference is immutable.
func (s *ArticleService) Update(id uint, req models.ArticleRequest) (models.ArticleResponse, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return models.ArticleResponse{}, err
	}
	user, err := s.auth.Authorize(article.UserID, req.Email, req.Password)
	if err != nil {
		return models.ArticleResponse{}, err
	}

	article.Title = req.Title
	article.Content = req.Content
	if err := s.validate.Struct(article); err != nil {
		return models.ArticleResponse{}, fmt.Errorf("article with empty title or content: %w", apperrors.ErrValidation)
	}
	if err := s.articleRepo.Update(article); err != nil {
		return models.ArticleResponse{}, err
	}

	publishEvent(s.mq, "article.updated", map[string]interface{}{
		"article_id": article.ID,
		"user_id":    user.ID,
	})
	return article.ToResponse(user.Email), nil
}

// Delete removes an article and, via the repository transaction, all its
// comments. Only the owner may do so.
func (s *ArticleService) Delete(id uint, req models.CredentialRequest) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}
	user, err := s.auth.Authorize(article.UserID, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(id); err != nil {
		return err
	}

	publishEvent(s.mq, "article.deleted", map[string]interface{}{
		"article_id": id,
		"user_id":    user.ID,
	})
	return nil
}

func (s *ArticleService) ownerEmail(userID uint) (string, error) {
	owner, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("owner of article missing: %w", err)
	}
	return owner.Email, nil
}

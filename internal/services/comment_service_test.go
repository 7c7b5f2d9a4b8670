package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"blog/internal/apperrors"
	"blog/internal/models"
	"blog/internal/repositories"
	"blog/internal/services"
)

// setupCommentService wires a CommentService over in-memory repositories
// with one article (id 1) owned by alice.
func setupCommentService(t *testing.T) (*services.CommentService, *repositories.MockCommentRepository) {
	t.Helper()

	mockUsers := new(MockUserRepository)
	alice := hashedUser(1, "a@x.com", "pw", "alice")
	bob := hashedUser(2, "b@x.com", "pw2", "bob")
	mockUsers.On("GetByEmail", "a@x.com").Return(alice, nil)
	mockUsers.On("GetByEmail", "b@x.com").Return(bob, nil)
	mockUsers.On("GetByID", uint(1)).Return(alice, nil)
	mockUsers.On("GetByID", uint(2)).Return(bob, nil)

	articleRepo := repositories.NewMockArticleRepository()
	err := articleRepo.Create(&models.Article{Title: "t", Content: "c", UserID: 1})
	assert.NoError(t, err)

	commentRepo := repositories.NewMockCommentRepository()
	auth := services.NewAuthService(mockUsers, nil, bcrypt.MinCost)
	return services.NewCommentService(commentRepo, articleRepo, mockUsers, auth, nil), commentRepo
}

func TestCommentService_Create(t *testing.T) {
	svc, _ := setupCommentService(t)

	// Any authenticated user may comment, not just the article's owner.
	resp, err := svc.Create(1, models.CommentRequest{
		Email: "b@x.com", Password: "pw2", Content: "nice post",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), resp.CommentID)
	assert.Equal(t, "b@x.com", resp.Email)

	comments, err := svc.GetByArticle(1)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCommentService_CreateMissingArticle(t *testing.T) {
	svc, _ := setupCommentService(t)

	_, err := svc.Create(99, models.CommentRequest{
		Email: "a@x.com", Password: "pw", Content: "lost",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCommentService_CreateBlankContent(t *testing.T) {
	svc, repo := setupCommentService(t)

	_, err := svc.Create(1, models.CommentRequest{
		Email: "a@x.com", Password: "pw", Content: "  ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestCommentService_UpdateOwnerRestricted(t *testing.T) {
	svc, _ := setupCommentService(t)

	created, err := svc.Create(1, models.CommentRequest{
		Email: "b@x.com", Password: "pw2", Content: "v1",
	})
	assert.NoError(t, err)

	// The article's owner is not the comment's owner.
	_, err = svc.Update(1, created.CommentID, models.CommentRequest{
		Email: "a@x.com", Password: "pw", Content: "edited",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	updated, err := svc.Update(1, created.CommentID, models.CommentRequest{
		Email: "b@x.com", Password: "pw2", Content: "v2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
}

func TestCommentService_DeleteArticleMismatch(t *testing.T) {
	svc, repo := setupCommentService(t)

	created, err := svc.Create(1, models.CommentRequest{
		Email: "a@x.com", Password: "pw", Content: "keep me",
	})
	assert.NoError(t, err)

	// Wrong parent article id fails even with the owner's valid credentials,
	// and the comment survives.
	err = svc.Delete(2, created.CommentID, models.CredentialRequest{Email: "a@x.com", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	still, err := repo.GetByID(created.CommentID)
	assert.NoError(t, err)
	assert.Equal(t, "keep me", still.Content)
}

func TestCommentService_Delete(t *testing.T) {
	svc, repo := setupCommentService(t)

	created, err := svc.Create(1, models.CommentRequest{
		Email: "a@x.com", Password: "pw", Content: "bye",
	})
	assert.NoError(t, err)

	err = svc.Delete(1, created.CommentID, models.CredentialRequest{Email: "b@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	err = svc.Delete(1, created.CommentID, models.CredentialRequest{Email: "a@x.com", Password: "pw"})
	assert.NoError(t, err)

	_, err = repo.GetByID(created.CommentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

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

// setupArticleService wires an ArticleService over the in-memory article
// repository and a credential mock with two registered users.
func setupArticleService() (*services.ArticleService, *repositories.MockArticleRepository) {
	mockUsers := new(MockUserRepository)
	alice := hashedUser(1, "a@x.com", "pw", "alice")
	bob := hashedUser(2, "b@x.com", "pw2", "bob")
	mockUsers.On("GetByEmail", "a@x.com").Return(alice, nil)
	mockUsers.On("GetByEmail", "b@x.com").Return(bob, nil)
	mockUsers.On("GetByID", uint(1)).Return(alice, nil)
	mockUsers.On("GetByID", uint(2)).Return(bob, nil)

	articleRepo := repositories.NewMockArticleRepository()
	auth := services.NewAuthService(mockUsers, nil, bcrypt.MinCost)
	return services.NewArticleService(articleRepo, mockUsers, auth, nil), articleRepo
}

func TestArticleService_Create(t *testing.T) {
	svc, _ := setupArticleService()

	resp, err := svc.Create(models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "hello", Content: "first post",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), resp.ArticleID)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.Equal(t, "hello", resp.Title)

	fetched, err := svc.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "first post", fetched.Content)
}

func TestArticleService_CreateBlankFields(t *testing.T) {
	svc, repo := setupArticleService()

	// Empty and whitespace-only values both count as blank.
	for _, title := range []string{"", "   "} {
		_, err := svc.Create(models.ArticleRequest{
			Email: "a@x.com", Password: "pw", Title: title, Content: "body",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	_, err := svc.Create(models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "title", Content: " ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Nothing may reach storage.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestArticleService_CreateInvalidAccount(t *testing.T) {
	svc, _ := setupArticleService()

	_, err := svc.Create(models.ArticleRequest{
		Email: "a@x.com", Password: "wrongpw", Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestArticleService_UpdateOwnerRestricted(t *testing.T) {
	svc, _ := setupArticleService()

	created, err := svc.Create(models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "t", Content: "v1",
	})
	assert.NoError(t, err)

	// Bob's credentials are valid but he is not the owner.
	_, err = svc.Update(created.ArticleID, models.ArticleRequest{
		Email: "b@x.com", Password: "pw2", Title: "t", Content: "hijacked",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// A bad password fails even for the owner.
	_, err = svc.Update(created.ArticleID, models.ArticleRequest{
		Email: "a@x.com", Password: "nope", Title: "t", Content: "v2",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	updated, err := svc.Update(created.ArticleID, models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "t", Content: "v2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
}

func TestArticleService_UpdateMissing(t *testing.T) {
	svc, _ := setupArticleService()

	_, err := svc.Update(42, models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "t", Content: "c",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestArticleService_Delete(t *testing.T) {
	svc, _ := setupArticleService()

	created, err := svc.Create(models.ArticleRequest{
		Email: "a@x.com", Password: "pw", Title: "t", Content: "c",
	})
	assert.NoError(t, err)

	err = svc.Delete(created.ArticleID, models.CredentialRequest{Email: "b@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	err = svc.Delete(created.ArticleID, models.CredentialRequest{Email: "a@x.com", Password: "pw"})
	assert.NoError(t, err)

	_, err = svc.GetByID(created.ArticleID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

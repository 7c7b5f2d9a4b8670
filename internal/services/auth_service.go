package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"blog/internal/apperrors"
	"blog/internal/models"
	"blog/internal/repositories"
)

// AuthService owns the user lifecycle and per-request identity resolution.
// There are no sessions or tokens: every mutating request carries an
// email+password pair that is re-verified against the store.
type AuthService struct {
	userRepo   repositories.UserRepository
	mq         EventPublisher
	bcryptCost int
}

// NewAuthService creates a new AuthService. cost is the bcrypt work factor;
// values outside bcrypt's range fall back to the default.
func NewAuthService(userRepo repositories.UserRepository, mq EventPublisher, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		mq:         mq,
		bcryptCost: cost,
	}
}

// verify is the credential verifier: a one-way, constant-time comparison of
// a candidate password against a stored bcrypt hash.
func (s *AuthService) verify(candidate, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}

// Signup registers a new user. Uniqueness is keyed strictly on email; the
// password is hashed before it is stored, and the returned user carries the
// store-generated id.
func (s *AuthService) Signup(req models.SignupRequest) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' %w", req.Email, apperrors.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashed),
		Username: req.Username,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	publishEvent(s.mq, "user.signedup", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

// Resolve turns a credential pair into the acting user. An unknown email
// yields ErrNotFound; a password mismatch yields ErrUnauthorized.
func (s *AuthService) Resolve(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if !s.verify(password, user.Password) {
		return nil, fmt.Errorf("invalid password for %s: %w", email, apperrors.ErrUnauthorized)
	}
	return user, nil
}

// Authorize resolves the acting user and permits the operation only if that
// identity owns the target resource.
func (s *AuthService) Authorize(ownerID uint, email, password string) (*models.User, error) {
	user, err := s.Resolve(email, password)
	if err != nil {
		return nil, err
	}
	if user.ID != ownerID {
		return nil, fmt.Errorf("user %d is not the owner: %w", user.ID, apperrors.ErrUnauthorized)
	}
	return user, nil
}

// Signout removes the acting user's own account. The cascade to their
// articles and comments happens inside the repository transaction.
func (s *AuthService) Signout(req models.CredentialRequest) error {
	user, err := s.Resolve(req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(user.ID); err != nil {
		return err
	}

	publishEvent(s.mq, "user.removed", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

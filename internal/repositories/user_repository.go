package repositories

import "blog/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	// Delete removes the user and, in the same transaction, every comment
	// they wrote, every comment under their articles, and their articles.
	Delete(id uint) error
}

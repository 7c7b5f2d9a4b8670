package models

import "time"

// User represents a blog account. Password always holds a bcrypt hash,
// never the plaintext value.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // never serialized
	Username  string    `json:"username" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignupRequest is the body for POST /signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

// CredentialRequest carries the email+password pair that every mutating
// request re-verifies. Used on its own for signout and deletes.
type CredentialRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public shape of a user; it never exposes the password.
type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ToResponse maps a User to its public response shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{Email: u.Email, Username: u.Username}
}

package models

import "time"

// Comment represents a comment under an article. Both UserID (owner) and
// ArticleID (parent) are immutable after creation.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:varchar(255);not null" validate:"required,notblank"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ArticleID uint      `json:"article_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentRequest is the body for POST /comment/:articleId and
// PUT /comment/:articleId/:commentId.
type CommentRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Content  string `json:"content"`
}

// CommentResponse is the public shape of a comment.
type CommentResponse struct {
	CommentID uint   `json:"commentId"`
	Email     string `json:"email"`
	Content   string `json:"content"`
}

// ToResponse maps a Comment to its response shape.
func (c *Comment) ToResponse(ownerEmail string) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		Email:     ownerEmail,
		Content:   c.Content,
	}
}

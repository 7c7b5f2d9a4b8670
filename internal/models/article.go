package models

import "time"

// Article represents a blog post. UserID is the immutable owner reference;
// update operations only touch Title and Content.
type Article struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null" validate:"required,notblank"`
	Content   string    `json:"content" gorm:"type:varchar(255);not null" validate:"required,notblank"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleRequest is the body for POST /article and PUT /article/:id.
type ArticleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// ArticleResponse is the public shape of an article.
type ArticleResponse struct {
	ArticleID uint   `json:"articleId"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// ToResponse maps an Article to its response shape. The owner's email is
// carried separately because the model only stores the owner id.
func (a *Article) ToResponse(ownerEmail string) ArticleResponse {
	return ArticleResponse{
		ArticleID: a.ID,
		Email:     ownerEmail,
		Title:     a.Title,
		Content:   a.Content,
	}
}

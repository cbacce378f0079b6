package domain

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrValidation   = errors.New("title, content and author are required")
)

// Post is a blog entry. Author is free text, not a reference to a User.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields every stored post must carry.
func (p *Post) Validate() error {
	if p.Title == "" || p.Content == "" || p.Author == "" {
		return ErrValidation
	}
	return nil
}

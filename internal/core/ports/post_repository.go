package ports

import (
	"context"

	"github.com/edublog/blog-system/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	// List returns every post in storage order.
	List(ctx context.Context) ([]*domain.Post, error)
	// Search returns posts whose title or content contains query, ignoring case.
	Search(ctx context.Context, query string) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	// Update replaces title, content and author and returns the stored result.
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}

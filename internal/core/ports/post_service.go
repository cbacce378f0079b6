package ports

import (
	"context"

	"github.com/edublog/blog-system/internal/core/domain"
)

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title   string
	Content string
	Author  string
}

// PostService defines use-case operations for posts.
type PostService interface {
	List(ctx context.Context) ([]*domain.Post, error)
	ListForRole(ctx context.Context, role string) ([]*domain.Post, error)
	Search(ctx context.Context, query string) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, input PostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, input PostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}

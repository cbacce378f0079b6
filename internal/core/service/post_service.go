package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
	"github.com/edublog/blog-system/internal/pkg/metrics"
)

type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// List returns every post, unfiltered and unpaginated.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListForRole backs the teacher-only listing. The role does not narrow the
// result: teachers see exactly what List returns.
func (s *PostService) ListForRole(ctx context.Context, role string) ([]*domain.Post, error) {
	s.logger.Debug().Str("role", role).Msg("listing posts for role")
	return s.List(ctx)
}

// Search matches query as a case-insensitive substring of title or content.
// An empty query matches every post.
func (s *PostService) Search(ctx context.Context, query string) ([]*domain.Post, error) {
	posts, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	metrics.PostSearchResults.Observe(float64(len(posts)))
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates input before anything reaches storage.
func (s *PostService) Create(ctx context.Context, input ports.PostInput) (*domain.Post, error) {
	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, fmt.Errorf("create post: %w", err)
	}

	metrics.PostWritesTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("post_id", created.ID).Str("author", created.Author).Msg("post created")
	return created, nil
}

// Update fully replaces title, content and author of an existing post. An
// unknown id is reported before the body is validated.
func (s *PostService) Update(ctx context.Context, id string, input ports.PostInput) (*domain.Post, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:        id,
		Title:     input.Title,
		Content:   input.Content,
		Author:    input.Author,
		UpdatedAt: time.Now().UTC(),
	}
	if err := post.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	metrics.PostWritesTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("post_id", id).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.PostWritesTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

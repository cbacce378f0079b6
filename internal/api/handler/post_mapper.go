package handler

import (
	"time"

	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
)

func (r postRequest) toInput() ports.PostInput {
	return ports.PostInput{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

// toPostResponses always returns a non-nil slice so empty lists encode as [].
func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

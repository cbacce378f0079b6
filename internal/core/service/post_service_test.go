package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	posts  []*domain.Post
	nextID int
	writes int
	err    error // if set, every call returns this error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	return &clone
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

// Search mirrors the case-insensitive regex the Mongo repository builds.
func (r *stubPostRepo) Search(_ context.Context, query string) ([]*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	q := strings.ToLower(query)
	out := make([]*domain.Post, 0)
	for _, p := range r.posts {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	r.writes++
	stored := clonePost(p)
	stored.ID = fmt.Sprintf("post-%d", r.nextID)
	r.posts = append(r.posts, stored)
	return clonePost(stored), nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, stored := range r.posts {
		if stored.ID == p.ID {
			r.writes++
			stored.Title, stored.Content, stored.Author = p.Title, p.Content, p.Author
			stored.UpdatedAt = p.UpdatedAt
			return clonePost(stored), nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i, p := range r.posts {
		if p.ID == id {
			r.writes++
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func validInput() ports.PostInput {
	return ports.PostInput{Title: "T", Content: "C", Author: "alice"}
}

func seed(t *testing.T, svc *PostService, inputs ...ports.PostInput) []*domain.Post {
	t.Helper()
	out := make([]*domain.Post, 0, len(inputs))
	for _, in := range inputs {
		p, err := svc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		out = append(out, p)
	}
	return out
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestPostService_Create_Success(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	post, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID == "" {
		t.Fatal("expected generated id")
	}
	if post.Title != "T" || post.Content != "C" || post.Author != "alice" {
		t.Errorf("fields not echoed: %+v", post)
	}
	if post.CreatedAt.IsZero() || post.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestPostService_Create_ValidationPerformsNoWrite(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	cases := map[string]ports.PostInput{
		"missing title":   {Content: "C", Author: "a"},
		"missing content": {Title: "T", Author: "a"},
		"missing author":  {Title: "T", Content: "C"},
		"all empty":       {},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	posts, _ := svc.List(context.Background())
	if len(posts) != 0 || repo.writes != 0 {
		t.Fatalf("invalid creates must not write: %d posts, %d writes", len(posts), repo.writes)
	}
}

func TestPostService_Create_RepoError(t *testing.T) {
	repo := newStubPostRepo()
	repo.err = errors.New("db unavailable")
	svc := NewPostService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), validInput()); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// List / ListForRole / Search
// ---------------------------------------------------------------------------

func TestPostService_List_InsertionOrder(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)
	seed(t, svc,
		ports.PostInput{Title: "first", Content: "c", Author: "a"},
		ports.PostInput{Title: "second", Content: "c", Author: "a"},
	)

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 || posts[0].Title != "first" || posts[1].Title != "second" {
		t.Fatalf("unexpected list: %+v", posts)
	}
}

func TestPostService_ListForRole_IgnoresRole(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)
	seed(t, svc, validInput(), validInput())

	for _, role := range []string{domain.RoleTeacher, domain.RoleStudent, ""} {
		posts, err := svc.ListForRole(context.Background(), role)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 2 {
			t.Errorf("role %q: expected 2 posts, got %d", role, len(posts))
		}
	}
}

func TestPostService_Search(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)
	seed(t, svc,
		ports.PostInput{Title: "Postagem de Teste 1", Content: "Esta é uma postagem.", Author: "a"},
		ports.PostInput{Title: "Outra postagem", Content: "Conteúdo de TESTE.", Author: "a"},
	)

	both, err := svc.Search(context.Background(), "teste")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(both) != 2 {
		t.Errorf("expected both posts to match, got %d", len(both))
	}

	none, err := svc.Search(context.Background(), "inexistente")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty, non-nil result, got %#v", none)
	}

	all, _ := svc.Search(context.Background(), "")
	if len(all) != 2 {
		t.Errorf("empty query must match everything, got %d", len(all))
	}
}

func TestPostService_List_RepoError(t *testing.T) {
	repo := newStubPostRepo()
	repo.err = errors.New("timeout")
	svc := NewPostService(repo, discardLogger)

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := svc.Search(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
}

// ---------------------------------------------------------------------------
// Get / Update / Delete
// ---------------------------------------------------------------------------

func TestPostService_Get(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)
	created := seed(t, svc, validInput())[0]

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("expected %q, got %q", created.Title, got.Title)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Update_FullReplace(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), discardLogger)
	created := seed(t, svc, validInput())[0]

	updated, err := svc.Update(context.Background(), created.ID, ports.PostInput{Title: "T2", Content: "C2", Author: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "T2" || updated.Content != "C2" || updated.Author != "bob" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed: %s -> %s", created.ID, updated.ID)
	}
}

func TestPostService_Update_Validation(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)
	created := seed(t, svc, validInput())[0]
	writes := repo.writes

	_, err := svc.Update(context.Background(), created.ID, ports.PostInput{Content: "only content"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if repo.writes != writes {
		t.Fatal("invalid update must not write")
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)

	if _, err := svc.Update(context.Background(), "missing", validInput()); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatal("update of unknown id must not write")
	}
}

func TestPostService_Update_UnknownIDBeforeValidation(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)
	seed(t, svc, validInput())
	writes := repo.writes

	_, err := svc.Update(context.Background(), "1234567890", ports.PostInput{Title: "T", Content: "C"})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if repo.writes != writes {
		t.Fatal("update of unknown id must not write")
	}
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, discardLogger)
	created := seed(t, svc, validInput())[0]

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("deleted post still readable: %v", err)
	}

	writes := repo.writes
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
	if repo.writes != writes {
		t.Fatal("delete of unknown id must not write")
	}
}

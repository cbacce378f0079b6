package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/edublog/blog-system/internal/core/domain"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestUserRepository_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("success", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		now := time.Now().UTC()
		user, err := repo.Create(context.Background(), &domain.User{
			Username:     "alice",
			PasswordHash: "$2a$hash",
			Role:         domain.RoleStudent,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(user.ID); err != nil {
			t.Fatalf("expected hex object id, got %q", user.ID)
		}
		if user.Username != "alice" || user.Role != domain.RoleStudent {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: blog.users index: username_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Username: "alice"})
		if !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "username", Value: "alice"},
			{Key: "password", Value: "$2a$hash"},
			{Key: "role", Value: domain.RoleTeacher},
		}))

		user, err := repo.FindByUsername(context.Background(), "alice")
		if err != nil {
			t.Fatalf("FindByUsername returned error: %v", err)
		}
		if user.ID != oid.Hex() || user.PasswordHash != "$2a$hash" || user.Role != domain.RoleTeacher {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "blog.users", mtest.FirstBatch))

		if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("storage error", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.FindByUsername(context.Background(), "alice")
		if err == nil || errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

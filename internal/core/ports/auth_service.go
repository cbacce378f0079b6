package ports

import (
	"context"

	"github.com/edublog/blog-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier checks access tokens and returns the embedded identity.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// LoginThrottle tracks failed logins per username.
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

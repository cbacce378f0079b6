package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/edublog/blog-system/internal/core/domain"
	"github.com/edublog/blog-system/internal/core/ports"
	"github.com/edublog/blog-system/internal/pkg/metrics"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle // optional
	log      zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	throttle ports.LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, throttle: throttle, log: log}
}

// Register stores a new user with a hashed password. A taken username is
// reported whatever the rest of the payload holds.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrValidation
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: %w", err)
	}

	if password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrValidation
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.UsersRegisteredTotal.WithLabelValues(role).Inc()
	s.log.Info().Str("username", username).Str("role", role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed token carrying the
// user's id and role. Unknown users and wrong passwords are indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, continuing")
		} else if blocked {
			metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginAttemptsTotal.WithLabelValues("invalid").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

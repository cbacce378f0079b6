package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edublog/blog-system/internal/core/domain"
)

// tokenClaims is the JWT payload: the user's id and role on top of the
// registered claims.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Role   string `json:"role"`
}

// JWTService issues and verifies HS256 access tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService returns a token service signing with secret. A ttl of zero
// issues tokens without an expiry.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *JWTService) Issue(claims domain.Claims) (string, error) {
	now := s.now()
	registered := jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)}
	if s.ttl > 0 {
		registered.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: registered,
		UserID:           claims.UserID,
		Role:             claims.Role,
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns domain.ErrInvalidToken for every failure so callers cannot
// tell a bad signature from a malformed or expired token.
func (s *JWTService) Verify(token string) (domain.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	if claims.UserID == "" || claims.Role == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return domain.Claims{UserID: claims.UserID, Role: claims.Role}, nil
}

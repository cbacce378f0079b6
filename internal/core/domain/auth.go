package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("missing bearer token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("access forbidden")
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID string
	Role   string
}

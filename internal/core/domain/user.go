package domain

import (
	"errors"
	"time"
)

const (
	RoleStudent = "aluno"
	RoleTeacher = "professor"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

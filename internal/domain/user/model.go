package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPassword = errors.New("invalid credentials")
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is one account. Points, Level and Badges are maintained by the
// service as activities are logged; they are never set directly.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Organization string    `json:"organization,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	Badges       []string  `json:"badges"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterInput carries the self-service signup fields.
type RegisterInput struct {
	Email        string
	Name         string
	Password     string
	Organization string
	AvatarURL    string
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	Name         *string
	Organization *string
	AvatarURL    *string
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/user"
)

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required"`
	Password     string `json:"password" binding:"required,min=8"`
	Organization string `json:"organization"`
	AvatarURL    string `json:"avatar_url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Organization string    `json:"organization,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Points       int       `json:"points"`
	Level        int       `json:"level"`
	Badges       []string  `json:"badges"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		Organization: u.Organization,
		AvatarURL:    u.AvatarURL,
		Points:       u.Points,
		Level:        u.Level,
		Badges:       u.Badges,
		CreatedAt:    u.CreatedAt,
	}
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	AvatarURL    *string `json:"avatar_url"`
}

package dto

import (
	"time"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// RegisterRequest defines the data needed to create a staff user.
type RegisterRequest struct {
	Username string      `json:"username" binding:"required,min=3"`
	Password string      `json:"password" binding:"required,min=8"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=admin staff"`
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to be rotated.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse defines the data returned for a staff user.
type UserResponse struct {
	UserID   string      `json:"userID"`
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Role     domain.Role `json:"role"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User                  UserResponse `json:"user"`
	AccessToken           string       `json:"accessToken"`
	AccessTokenExpiresAt  time.Time    `json:"accessTokenExpiresAt"`
	RefreshToken          string       `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time    `json:"refreshTokenExpiresAt"`
}

// ToUserResponse converts a domain.User.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

package services

import (
	"context"

	"github.com/mkwapatira/minibank/internal/dto"
)

// AuthSvcFacade is the session/access gate collaborator: it issues, refreshes
// and revokes signed session credentials for staff users. The ledger and query
// services trust the subject the middleware extracts from these credentials.
type AuthSvcFacade interface {
	// Register creates a staff user and returns a fresh token pair.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and returns a fresh token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// Refresh rotates a valid refresh token into a new token pair.
	Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error)

	// Logout durably revokes the presented access token and clears the user's
	// refresh token.
	Logout(ctx context.Context, rawAccessToken string) error
}

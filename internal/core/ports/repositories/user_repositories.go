package repositories

import (
	"context"
	"time"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for staff users.
type UserRepositoryFacade interface {
	// SaveUser persists a new user. Returns ErrDuplicate (wrapped) when the
	// username is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token; empty hash clears it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time, now time.Time) error
}

// TokenRevocationRepository is the durable revocation store behind logout.
// Revocations survive process restarts, unlike an in-memory blacklist.
type TokenRevocationRepository interface {
	// RevokeToken records a token id as revoked until its natural expiry.
	RevokeToken(ctx context.Context, revoked domain.RevokedToken) error

	// IsTokenRevoked reports whether a token id has been revoked.
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)

	// PurgeExpired deletes revocation rows whose tokens have expired anyway.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

package models

import (
	"database/sql"
	"time"
)

// User mirrors the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	FullName     string `db:"full_name"`
	Role         string `db:"role"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// RevokedToken mirrors the revoked_tokens table backing durable logout.
type RevokedToken struct {
	TokenID   string    `db:"token_id"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	RevokedAt time.Time `db:"revoked_at"`
}

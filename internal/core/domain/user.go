package domain

import "time"

// Role is the access level of a staff user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User represents a staff member who operates the ledger on behalf of customers.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	Role         Role   `json:"role"`
	AuditFields

	// Refresh token fields. Only the hash of the opaque refresh token is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// RevokedToken records a logged-out access token by its JTI so the revocation
// survives process restarts.
type RevokedToken struct {
	TokenID   string    `json:"tokenID"` // JWT "jti" claim
	UserID    string    `json:"userID"`
	ExpiresAt time.Time `json:"expiresAt"` // Token's own expiry; rows past it are purged
	RevokedAt time.Time `json:"revokedAt"`
}

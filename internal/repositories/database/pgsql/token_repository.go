package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
)

// PgxTokenRepository is the durable revocation store behind logout. A revoked
// token id stays rejected across process restarts until its natural expiry,
// after which PurgeExpired reclaims the row.
type PgxTokenRepository struct {
	BaseRepository
}

func newPgxTokenRepository(pool *pgxpool.Pool) *PgxTokenRepository {
	return &PgxTokenRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TokenRevocationRepository = (*PgxTokenRepository)(nil)

// RevokeToken records a token id as revoked. Revoking an already revoked token
// is a no-op.
func (r *PgxTokenRepository) RevokeToken(ctx context.Context, revoked domain.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (token_id, user_id, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, revoked.TokenID, revoked.UserID, revoked.ExpiresAt, revoked.RevokedAt)
	if err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", revoked.TokenID, err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id has been revoked.
func (r *PgxTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_id = $1);`

	var revoked bool
	if err := r.Pool.QueryRow(ctx, query, tokenID).Scan(&revoked); err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

// PurgeExpired deletes revocation rows for tokens that have expired on their
// own and returns the number of rows removed.
func (r *PgxTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM revoked_tokens WHERE expires_at < $1;`

	tag, err := r.Pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired revocations: %w", err)
	}
	return tag.RowsAffected(), nil
}

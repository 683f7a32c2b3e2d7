package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

func TestGenerateAccountNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ACC\d{6}$`)
	for i := 0; i < 50; i++ {
		number, err := GenerateAccountNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)
	assert.True(t, CheckPasswordHash("hunter2-but-longer", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &domain.User{UserID: "user-1", Username: "teller1", Role: domain.RoleAdmin}
	secret := "test-secret-at-least-32-bytes-long!!"

	token, expiresAt, err := GenerateJWT(user, secret, time.Hour, "minibank-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "teller1", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)

	_, err = ParseAndValidateJWT(token, "a-different-secret-entirely!!!!!")
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, err := GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	hash := HashRefreshToken(raw)
	assert.NotEqual(t, raw, hash)
	assert.True(t, CompareRefreshTokenHash(raw, hash))
	assert.False(t, CompareRefreshTokenHash("other", hash))
}

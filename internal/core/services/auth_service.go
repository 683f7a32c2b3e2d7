package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
	"github.com/mkwapatira/minibank/internal/middleware"
	"github.com/mkwapatira/minibank/internal/utils"
)

const refreshTokenBytes = 32

// AuthConfig carries the token parameters the auth service signs with.
type AuthConfig struct {
	JWTSecret          string
	JWTExpiry          time.Duration
	JWTIssuer          string
	RefreshTokenExpiry time.Duration
}

type authService struct {
	userRepo       portsrepo.UserRepositoryFacade
	revocationRepo portsrepo.TokenRevocationRepository
	cfg            AuthConfig
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, revocationRepo portsrepo.TokenRevocationRepository, cfg AuthConfig) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, revocationRepo: revocationRepo, cfg: cfg}
}

// Register creates a staff user and signs them in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Warn("Registration failed", "username", req.Username, "error", err)
		return nil, err
	}
	logger.Info("User registered", "user_id", user.UserID)

	return s.issueTokenPair(ctx, &user)
}

// Login verifies credentials and returns a fresh token pair. Unknown usernames
// and wrong passwords produce the same error so neither can be probed.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: bad password", "user_id", user.UserID)
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	logger.Info("User logged in", "user_id", user.UserID)
	return s.issueTokenPair(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair. The presented
// token is compared against the stored hash and invalidated by the rotation.
func (s *authService) Refresh(ctx context.Context, req dto.RefreshRequest) (*dto.AuthResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(req.RefreshToken, user.RefreshTokenHash) {
		logger.Warn("Refresh failed: token mismatch", "user_id", user.UserID)
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}
	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		logger.Warn("Refresh failed: token expired", "user_id", user.UserID)
		return nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}

	return s.issueTokenPair(ctx, user)
}

// Logout durably revokes the presented access token by its jti and clears the
// user's refresh token. Both survive a process restart.
func (s *authService) Logout(ctx context.Context, rawAccessToken string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	claims, err := utils.ParseAndValidateJWT(rawAccessToken, s.cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return fmt.Errorf("%w: token missing revocation claims", apperrors.ErrUnauthorized)
	}

	now := time.Now().UTC()
	err = s.revocationRepo.RevokeToken(ctx, domain.RevokedToken{
		TokenID:   claims.ID,
		UserID:    claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
		RevokedAt: now,
	})
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, claims.Subject, "", nil, now); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	logger.Info("User logged out", "user_id", claims.Subject, "token_id", claims.ID)
	return nil
}

// issueTokenPair signs a new access token and rotates the opaque refresh
// token, persisting only the hash of the latter.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessToken, accessExpiresAt, err := utils.GenerateJWT(user, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiresAt := time.Now().UTC().Add(s.cfg.RefreshTokenExpiry)

	hash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, hash, &refreshExpiresAt, time.Now().UTC()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:                  dto.ToUserResponse(user),
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

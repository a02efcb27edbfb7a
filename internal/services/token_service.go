package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

const accessTokenPrefix = "access_token:"

// TokenServiceImpl implements domain.TokenService with opaque random
// identifiers. Access tokens live in Redis and resolve to a user id;
// refresh tokens are durable rows. Holding the identifier is the sole
// capability to assert identity.
type TokenServiceImpl struct {
	redisClient *redis.Client
	refreshRepo domain.RefreshTokenRepository
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(redisClient *redis.Client, refreshRepo domain.RefreshTokenRepository, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &TokenServiceImpl{
		redisClient: redisClient,
		refreshRepo: refreshRepo,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Issue implements domain.TokenService
func (s *TokenServiceImpl) Issue(ctx context.Context, userID uint) (*domain.TokenPair, error) {
	accessToken := uuid.NewString()
	refreshToken := uuid.NewString()

	if err := s.redisClient.Set(ctx, accessTokenPrefix+accessToken, userID, s.accessTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}

	row := &domain.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.refreshRepo.Create(ctx, row); err != nil {
		// Do not leave a live access token behind a half-issued pair.
		s.redisClient.Del(ctx, accessTokenPrefix+accessToken)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        int64(s.accessTTL.Seconds()),
		RefreshExpiresIn: int64(s.refreshTTL.Seconds()),
	}, nil
}

// Validate implements domain.TokenService. Read-only: the TTL is not
// extended, tokens are not sliding-expiration.
func (s *TokenServiceImpl) Validate(ctx context.Context, accessToken string) (uint, error) {
	val, err := s.redisClient.Get(ctx, accessTokenPrefix+accessToken).Result()
	if err == redis.Nil {
		return 0, domain.ErrTokenInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up access token: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	return uint(userID), nil
}

// Refresh implements domain.TokenService. The refresh token row is left
// unchanged and stays reusable until its own expiry.
func (s *TokenServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AccessGrant, error) {
	row, err := s.refreshRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !row.ExpiresAt.After(time.Now()) {
		return nil, domain.ErrRefreshTokenInvalid
	}

	accessToken := uuid.NewString()
	if err := s.redisClient.Set(ctx, accessTokenPrefix+accessToken, row.UserID, s.accessTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}

	return &domain.AccessGrant{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// RevokeAccess implements domain.TokenService. Deletion is immediate
// revocation of that single token.
func (s *TokenServiceImpl) RevokeAccess(ctx context.Context, accessToken string) error {
	if err := s.redisClient.Del(ctx, accessTokenPrefix+accessToken).Err(); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	return nil
}

// RevokeAllRefresh implements domain.TokenService. Already-issued
// access tokens stay valid until their own TTL lapses.
func (s *TokenServiceImpl) RevokeAllRefresh(ctx context.Context, userID uint) error {
	return s.refreshRepo.DeleteByUser(ctx, userID)
}

package mocks

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc            func(ctx context.Context, userID uint) (*domain.TokenPair, error)
	ValidateFunc         func(ctx context.Context, accessToken string) (uint, error)
	RefreshFunc          func(ctx context.Context, refreshToken string) (*domain.AccessGrant, error)
	RevokeAccessFunc     func(ctx context.Context, accessToken string) error
	RevokeAllRefreshFunc func(ctx context.Context, userID uint) error
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue implements domain.TokenService
func (m *MockTokenService) Issue(ctx context.Context, userID uint) (*domain.TokenPair, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return &domain.TokenPair{
		AccessToken:      "access-token",
		RefreshToken:     "refresh-token",
		ExpiresIn:        1800,
		RefreshExpiresIn: 604800,
	}, nil
}

// Validate implements domain.TokenService
func (m *MockTokenService) Validate(ctx context.Context, accessToken string) (uint, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, accessToken)
	}
	return 1, nil
}

// Refresh implements domain.TokenService
func (m *MockTokenService) Refresh(ctx context.Context, refreshToken string) (*domain.AccessGrant, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.AccessGrant{AccessToken: "access-token", ExpiresIn: 1800}, nil
}

// RevokeAccess implements domain.TokenService
func (m *MockTokenService) RevokeAccess(ctx context.Context, accessToken string) error {
	if m.RevokeAccessFunc != nil {
		return m.RevokeAccessFunc(ctx, accessToken)
	}
	return nil
}

// RevokeAllRefresh implements domain.TokenService
func (m *MockTokenService) RevokeAllRefresh(ctx context.Context, userID uint) error {
	if m.RevokeAllRefreshFunc != nil {
		return m.RevokeAllRefreshFunc(ctx, userID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

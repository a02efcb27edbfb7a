package mocks

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockAuthClient implements domain.AuthClient for testing the guard
// without a token service or broker behind it.
type MockAuthClient struct {
	AuthenticateFunc  func(ctx context.Context, accessToken string) (uint, error)
	ValidateTokenFunc func(ctx context.Context, accessToken string) (*domain.TokenIdentity, error)
	ValidateRolesFunc func(ctx context.Context, userID uint, requiredRoles []string) (bool, error)
}

// NewMockAuthClient creates a new MockAuthClient
func NewMockAuthClient() *MockAuthClient {
	return &MockAuthClient{}
}

// Authenticate implements domain.AuthClient
func (m *MockAuthClient) Authenticate(ctx context.Context, accessToken string) (uint, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, accessToken)
	}
	return 1, nil
}

// ValidateToken implements domain.AuthClient
func (m *MockAuthClient) ValidateToken(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, accessToken)
	}
	return &domain.TokenIdentity{UserID: 1, Roles: []string{}}, nil
}

// ValidateRoles implements domain.AuthClient
func (m *MockAuthClient) ValidateRoles(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
	if m.ValidateRolesFunc != nil {
		return m.ValidateRolesFunc(ctx, userID, requiredRoles)
	}
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.AuthClient = (*MockAuthClient)(nil)

package mocks

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	SendSignupLoginOTPFunc func(ctx context.Context, phoneNumber string) error
	VerifySignupLoginFunc  func(ctx context.Context, phoneNumber, code string) (*domain.AuthResult, error)
	RefreshFunc            func(ctx context.Context, refreshToken string) (*domain.AccessGrant, error)
	LogoutFunc             func(ctx context.Context, accessToken string) error
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// SendSignupLoginOTP implements domain.AuthService
func (m *MockAuthService) SendSignupLoginOTP(ctx context.Context, phoneNumber string) error {
	if m.SendSignupLoginOTPFunc != nil {
		return m.SendSignupLoginOTPFunc(ctx, phoneNumber)
	}
	return nil
}

// VerifySignupLogin implements domain.AuthService
func (m *MockAuthService) VerifySignupLogin(ctx context.Context, phoneNumber, code string) (*domain.AuthResult, error) {
	if m.VerifySignupLoginFunc != nil {
		return m.VerifySignupLoginFunc(ctx, phoneNumber, code)
	}
	return &domain.AuthResult{
		User: &domain.User{ID: 1, PhoneNumber: phoneNumber, Roles: []string{}},
		Tokens: &domain.TokenPair{
			AccessToken:      "access-token",
			RefreshToken:     "refresh-token",
			ExpiresIn:        1800,
			RefreshExpiresIn: 604800,
		},
	}, nil
}

// Refresh implements domain.AuthService
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AccessGrant, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.AccessGrant{AccessToken: "access-token", ExpiresIn: 1800}, nil
}

// Logout implements domain.AuthService
func (m *MockAuthService) Logout(ctx context.Context, accessToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessToken)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)

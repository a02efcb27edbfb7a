package mocks

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	SendFunc          func(ctx context.Context, phoneNumber string, purpose domain.OTPPurpose) error
	VerifyFunc        func(ctx context.Context, phoneNumber, code string, purpose domain.OTPPurpose) error
	RemoveLockoutFunc func(ctx context.Context, phoneNumber string) error
}

// NewMockOTPService creates a new MockOTPService
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Send implements domain.OTPService
func (m *MockOTPService) Send(ctx context.Context, phoneNumber string, purpose domain.OTPPurpose) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, phoneNumber, purpose)
	}
	return nil
}

// Verify implements domain.OTPService
func (m *MockOTPService) Verify(ctx context.Context, phoneNumber, code string, purpose domain.OTPPurpose) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, phoneNumber, code, purpose)
	}
	return nil
}

// RemoveLockout implements domain.OTPService
func (m *MockOTPService) RemoveLockout(ctx context.Context, phoneNumber string) error {
	if m.RemoveLockoutFunc != nil {
		return m.RemoveLockoutFunc(ctx, phoneNumber)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)

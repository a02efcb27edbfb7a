package mocks

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockRoleService implements domain.RoleService for testing
type MockRoleService struct {
	GetRolesFunc   func(ctx context.Context, userID uint) ([]string, error)
	HasRoleFunc    func(ctx context.Context, userID uint, required string) (bool, error)
	HasAnyRoleFunc func(ctx context.Context, userID uint, required []string) (bool, error)
	GrantRoleFunc  func(ctx context.Context, userID uint, role string) error
}

// NewMockRoleService creates a new MockRoleService
func NewMockRoleService() *MockRoleService {
	return &MockRoleService{}
}

// GetRoles implements domain.RoleService
func (m *MockRoleService) GetRoles(ctx context.Context, userID uint) ([]string, error) {
	if m.GetRolesFunc != nil {
		return m.GetRolesFunc(ctx, userID)
	}
	return []string{}, nil
}

// HasRole implements domain.RoleService
func (m *MockRoleService) HasRole(ctx context.Context, userID uint, required string) (bool, error) {
	if m.HasRoleFunc != nil {
		return m.HasRoleFunc(ctx, userID, required)
	}
	return false, nil
}

// HasAnyRole implements domain.RoleService
func (m *MockRoleService) HasAnyRole(ctx context.Context, userID uint, required []string) (bool, error) {
	if m.HasAnyRoleFunc != nil {
		return m.HasAnyRoleFunc(ctx, userID, required)
	}
	return false, nil
}

// GrantRole implements domain.RoleService
func (m *MockRoleService) GrantRole(ctx context.Context, userID uint, role string) error {
	if m.GrantRoleFunc != nil {
		return m.GrantRoleFunc(ctx, userID, role)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.RoleService = (*MockRoleService)(nil)

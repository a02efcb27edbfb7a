package mocks

import (
	"context"
	"sync"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing.
// With no overrides set it behaves as an in-memory directory.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByPhoneFunc func(ctx context.Context, phoneNumber string) (*domain.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	AddRoleFunc     func(ctx context.Context, userID uint, role string) error

	mu     sync.Mutex
	users  map[uint]*domain.User
	nextID uint
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]*domain.User),
		nextID: 1,
	}
}

// Seed inserts a user directly into the in-memory store
func (m *MockUserRepository) Seed(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == 0 {
		user.ID = m.nextID
	}
	if user.ID >= m.nextID {
		m.nextID = user.ID + 1
	}
	m.users[user.ID] = user
}

// Create implements domain.UserRepository
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

// FindByPhone implements domain.UserRepository
func (m *MockUserRepository) FindByPhone(ctx context.Context, phoneNumber string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phoneNumber)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.PhoneNumber == phoneNumber {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByID implements domain.UserRepository
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// AddRole implements domain.UserRepository
func (m *MockUserRepository) AddRole(ctx context.Context, userID uint, role string) error {
	if m.AddRoleFunc != nil {
		return m.AddRoleFunc(ctx, userID, role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !domain.HasTag(u.Roles, role) {
		u.Roles = append(u.Roles, role)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)

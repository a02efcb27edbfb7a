package mocks

import (
	"context"
	"sync"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository
// for testing. With no overrides set it behaves as an in-memory store.
type MockRefreshTokenRepository struct {
	CreateFunc        func(ctx context.Context, token *domain.RefreshToken) error
	FindByTokenFunc   func(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteByTokenFunc func(ctx context.Context, token string) error
	DeleteByUserFunc  func(ctx context.Context, userID uint) error

	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{
		tokens: make(map[string]*domain.RefreshToken),
	}
}

// Create implements domain.RefreshTokenRepository
func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.Token] = token
	return nil
}

// FindByToken implements domain.RefreshTokenRepository
func (m *MockRefreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tokens[token]; ok {
		return t, nil
	}
	return nil, domain.ErrRefreshTokenInvalid
}

// DeleteByToken implements domain.RefreshTokenRepository
func (m *MockRefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

// DeleteByUser implements domain.RefreshTokenRepository
func (m *MockRefreshTokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, k)
		}
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)

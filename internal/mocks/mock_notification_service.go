package mocks

import "github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error
	Sent        []string
}

// NewMockNotificationService creates a new MockNotificationService
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the message and delegates to SendSMSFunc if set
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.Sent = append(m.Sent, message)
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)

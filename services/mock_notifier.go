package services

import (
	"github.com/stretchr/testify/mock"
)

// Ensure MockNotifier implements Notifier
var _ Notifier = (*MockNotifier)(nil)

// MockNotifier is a mock implementation for testing and extends `mock.Mock`
type MockNotifier struct {
	mock.Mock
}

// Notify (Mocked)
func (m *MockNotifier) Notify(action string, payload map[string]interface{}) {
	m.Called(action, payload)
}

package learning

import (
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event Event) {
	m.Called(event)
}

func (m *MockPublisher) Subscribe(sessionID string) (<-chan Event, func()) {
	args := m.Called(sessionID)
	return args.Get(0).(<-chan Event), args.Get(1).(func())
}

// expectEvent registers one Publish call of the given type
func (m *MockPublisher) expectEvent(eventType EventType) *mock.Call {
	return m.On("Publish", mock.MatchedBy(func(e Event) bool {
		return e.Type == eventType
	})).Once()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

package notify

import "sync"

// MockSender is a test double that records every send and returns a
// configurable result.
type MockSender struct {
	mu    sync.Mutex
	Sends []MockSend

	// Fail, when true, makes every send report failure with Detail.
	Fail   bool
	Detail string
}

// MockSend records one dispatched message.
type MockSend struct {
	To   string
	Body string
}

// NewMockSender creates a mock that reports success.
func NewMockSender() *MockSender {
	return &MockSender{Detail: "sent"}
}

// Send records the message and returns the configured result.
func (m *MockSender) Send(to, body string) (bool, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sends = append(m.Sends, MockSend{To: to, Body: body})
	if m.Fail {
		return false, m.Detail
	}
	return true, m.Detail
}

// SendsTo returns all recorded messages to a specific number.
func (m *MockSender) SendsTo(to string) []MockSend {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []MockSend
	for _, s := range m.Sends {
		if s.To == to {
			result = append(result, s)
		}
	}
	return result
}

// Reset clears all recorded sends.
func (m *MockSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sends = nil
}

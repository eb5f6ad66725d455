package github

import (
	"context"
	"sync"
)

// MockClient is a configurable Client used in tests.
type MockClient struct {
	mu     sync.Mutex
	Tokens []string // tokens seen, in call order

	Result *ViewerCalendar
	Err    error
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) FetchViewerCalendar(ctx context.Context, token string) (*ViewerCalendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Tokens = append(m.Tokens, token)

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// CallCount reports how many upstream queries were issued.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tokens)
}

package llm

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of Client for testing. It records
// every prompt it receives and replays scripted responses in order.
type MockClient struct {
	mu      sync.Mutex
	prompts []string

	// Test configuration
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Responses    []string // Responses to replay in order
	Err          error    // Error to return from Generate
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

// NewMockClient creates a new mock generation client for testing.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{
		Responses: responses,
	}
}

// Generate implements Client.Generate
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, prompt)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Responses) > 0 {
		response := m.Responses[0]
		m.Responses = m.Responses[1:]
		return response, nil
	}

	return "mock response", nil
}

// Prompts returns a copy of all prompts received so far.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// CallCount returns the number of Generate calls received.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Package testutil provides shared test doubles and filesystem helpers.
package testutil

import (
	"context"
	"sync"
)

// ModelCall records one exchange sent to the MockModel.
type ModelCall struct {
	SystemPrompt string
	UserPrompt   string
}

// MockModel mocks the model client. Responses are served from the queue in
// order; when the queue runs out the last response repeats. Respond, when
// set, takes precedence and computes the answer from the prompts. Err fails
// every call, ErrAt fails only the call with that index.
type MockModel struct {
	mu        sync.Mutex
	Responses []string
	Respond   func(call ModelCall) (string, error)
	Err       error
	ErrAt     map[int]error
	Calls     []ModelCall
}

// Complete implements the model interface of the engine and detector.
func (m *MockModel) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := ModelCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt}
	index := len(m.Calls)
	m.Calls = append(m.Calls, call)

	if m.Err != nil {
		return "", m.Err
	}
	if err, ok := m.ErrAt[index]; ok {
		return "", err
	}
	if m.Respond != nil {
		return m.Respond(call)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	if index < len(m.Responses) {
		return m.Responses[index], nil
	}
	return m.Responses[len(m.Responses)-1], nil
}

// CallCount returns how many exchanges the mock has served.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"genaizone/internal/port"
)

// MockCompleter is a mock implementation of port.Completer.
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt, modelID string, params port.GenerationParams) (string, error) {
	args := m.Called(ctx, prompt, modelID, params)
	return args.String(0), args.Error(1)
}

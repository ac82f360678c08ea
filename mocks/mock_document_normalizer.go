package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDocumentNormalizer is a mock implementation of port.DocumentNormalizer.
type MockDocumentNormalizer struct {
	mock.Mock
}

func (m *MockDocumentNormalizer) Normalize(ctx context.Context, path, declaredExt string) string {
	args := m.Called(ctx, path, declaredExt)
	return args.String(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"genaizone/internal/domain"
	"genaizone/internal/service"
)

// MockComparisonService is a mock implementation of service.ComparisonService.
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Submit(ctx context.Context, input service.SubmitInput) (*domain.Comparison, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

func (m *MockComparisonService) Latest(ctx context.Context, sessionID string) (*domain.Comparison, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comparison), args.Error(1)
}

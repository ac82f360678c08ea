package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"genaizone/internal/domain"
	"genaizone/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, input service.UploadInput) (*domain.UploadedDocument, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedDocument), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, sessionID string) []domain.UploadedDocument {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.UploadedDocument)
}

func (m *MockUploadService) Remove(ctx context.Context, sessionID string, docID uuid.UUID) error {
	args := m.Called(ctx, sessionID, docID)
	return args.Error(0)
}

func (m *MockUploadService) PurgeExpired(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

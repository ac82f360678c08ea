package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"genaizone/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.UploadOutput), args.Error(1)
}

func (m *MockObjectStorage) Download(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// LocalPath returns a no-op release func when the expectation does not supply one.
func (m *MockObjectStorage) LocalPath(ctx context.Context, key string) (string, func(), error) {
	args := m.Called(ctx, key)
	release := func() {}
	if fn, ok := args.Get(1).(func()); ok && fn != nil {
		release = fn
	}
	return args.String(0), release, args.Error(2)
}

func (m *MockObjectStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

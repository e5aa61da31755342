// Package mocks provides mock implementations for testing use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MockRecordRepository is a mock implementation of RecordRepository for testing.
type MockRecordRepository struct {
	mock.Mock
}

// Create mocks the Create method of RecordRepository.
func (m *MockRecordRepository) Create(ctx context.Context, record *tokenDomain.EncryptionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// Get mocks the Get method of RecordRepository.
func (m *MockRecordRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*tokenDomain.EncryptionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.EncryptionRecord), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Encode mocks the Encode method of TokenUseCase.
func (m *MockTokenUseCase) Encode(
	ctx context.Context,
	payload *tokenDomain.Payload,
) (string, uuid.UUID, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Get(1).(uuid.UUID), args.Error(2)
}

// Decode mocks the Decode method of TokenUseCase.
func (m *MockTokenUseCase) Decode(
	ctx context.Context,
	token string,
	id uuid.UUID,
) (*tokenDomain.Payload, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.Payload), args.Error(1)
}

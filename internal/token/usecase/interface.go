// Package usecase implements the encode/decode orchestration of the opaque
// token core: payload serialization, key issuance, encryption, and record
// custody.
package usecase

import (
	"context"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// RecordRepository defines the interface for EncryptionRecord persistence.
// Records are append-only: create and read, never update or delete.
type RecordRepository interface {
	// Create inserts a new record. Returns domain.ErrDuplicateRecordID on an
	// id collision instead of overwriting.
	Create(ctx context.Context, record *tokenDomain.EncryptionRecord) error

	// Get retrieves a record by id. Returns domain.ErrRecordNotFound when no
	// record exists, domain.ErrStorageUnavailable when the store is unreachable.
	Get(ctx context.Context, id uuid.UUID) (*tokenDomain.EncryptionRecord, error)
}

// TokenUseCase defines the two operations of the opaque token core.
type TokenUseCase interface {
	// Encode encrypts a payload into an opaque hex token and the record id
	// that serves as its decode context. A token is only returned after its
	// key material has been durably stored.
	Encode(ctx context.Context, payload *tokenDomain.Payload) (token string, id uuid.UUID, err error)

	// Decode decrypts a previously issued token back into its payload, given
	// the record id returned by Encode.
	Decode(ctx context.Context, token string, id uuid.UUID) (*tokenDomain.Payload, error)
}

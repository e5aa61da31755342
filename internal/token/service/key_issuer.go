package service

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// randomKeyIssuer implements KeyIssuer using crypto/rand.
//
// A CSPRNG is a hard requirement here: the record id is the public decode
// context and must be unguessable, and the key/IV protect the payload itself.
type randomKeyIssuer struct{}

// NewKeyIssuer creates a KeyIssuer backed by crypto/rand.
func NewKeyIssuer() KeyIssuer {
	return &randomKeyIssuer{}
}

// Issue returns a fresh random record id (UUIDv4), 32-byte key, and 16-byte IV.
// Nothing is persisted; the caller commits the material after a successful
// encryption.
func (r *randomKeyIssuer) Issue() (uuid.UUID, []byte, []byte, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, nil, nil, fmt.Errorf("failed to generate record id: %w", err)
	}

	key := make([]byte, tokenDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return uuid.Nil, nil, nil, fmt.Errorf("failed to generate key: %w", err)
	}

	iv := make([]byte, tokenDomain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		tokenDomain.Zero(key)
		return uuid.Nil, nil, nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	return id, key, iv, nil
}

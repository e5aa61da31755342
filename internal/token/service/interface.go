// Package service provides the cryptographic services of the token core:
// cipher implementations, key issuance, and at-rest key protection.
package service

import (
	"context"

	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// Cipher defines a deterministic, reversible transformation between plaintext
// and ciphertext under a caller-supplied key and IV. Implementations are
// stateless and safe for concurrent use.
type Cipher interface {
	// Encrypt encrypts plaintext with the given 32-byte key and 16-byte IV.
	Encrypt(plaintext, key, iv []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the given 32-byte key and 16-byte IV.
	// Returns domain.ErrDecryptionFailed when the ciphertext cannot be
	// decrypted under the supplied key material.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}

// KeyIssuer draws fresh one-time-use key material from a cryptographically
// secure random source. Nothing is persisted by Issue; the caller pairs the
// issued material with a successful encryption before committing it.
type KeyIssuer interface {
	// Issue returns a new random record id, 32-byte key, and 16-byte IV.
	Issue() (id uuid.UUID, key, iv []byte, err error)
}

// KeyProtector converts raw key material to and from its stored textual form.
// The hex implementation is a plain reversible encoding; the KMS implementation
// additionally wraps the material with an external key so records at rest do
// not contain usable keys.
type KeyProtector interface {
	// Protect encodes key and IV for storage.
	Protect(ctx context.Context, key, iv []byte) (keyText, ivText string, err error)

	// Unprotect decodes stored key and IV text back to raw bytes.
	// Callers own zeroing the returned slices.
	Unprotect(ctx context.Context, keyText, ivText string) (key, iv []byte, err error)
}

// NewCipher creates a cipher instance for the given mode.
func NewCipher(mode tokenDomain.Mode) (Cipher, error) {
	switch mode {
	case tokenDomain.AESCBC:
		return NewAESCBC(), nil
	case tokenDomain.AESGCM:
		return NewAESGCM(), nil
	case tokenDomain.ChaCha20:
		return NewChaCha20Poly1305(), nil
	default:
		return nil, tokenDomain.ErrUnsupportedMode
	}
}

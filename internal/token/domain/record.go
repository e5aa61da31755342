// Package domain defines the entities and errors of the opaque token core.
package domain

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// EncryptionRecord is the persisted key material for a single issued token.
// The ID doubles as the public decode context; the record itself never leaves
// the service. Records are immutable once written: they are created exactly
// once per encode and only ever read afterwards.
type EncryptionRecord struct {
	ID uuid.UUID
	// SecretKey is the 256-bit key in its stored textual encoding
	// (hex, or KMS-wrapped base64 when a keeper is configured).
	SecretKey string
	// IV is the 128-bit initialization vector in the same encoding as SecretKey.
	IV        string
	CreatedAt time.Time
}

// Payload is the caller-supplied content of a token: an owner identifier plus
// an arbitrary JSON-serializable value.
type Payload struct {
	User string `json:"user"`
	Data any    `json:"data"`
}

// DecodeHexKeyMaterial decodes hex-encoded key and IV text into raw bytes,
// enforcing the expected sizes. Callers own zeroing the returned slices.
func DecodeHexKeyMaterial(keyText, ivText string) (key, iv []byte, err error) {
	key, err = hex.DecodeString(keyText)
	if err != nil || len(key) != KeySize {
		return nil, nil, ErrInvalidKeyMaterial
	}

	iv, err = hex.DecodeString(ivText)
	if err != nil || len(iv) != IVSize {
		Zero(key)
		return nil, nil, ErrInvalidKeyMaterial
	}

	return key, iv, nil
}

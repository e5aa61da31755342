package domain

import (
	"github.com/allisson/tokens/internal/errors"
)

var (
	// ErrRecordNotFound indicates no encryption record exists for the given id.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "encryption record not found")

	// ErrDuplicateRecordID indicates an insert collided with an existing record id.
	// With 128-bit random ids this is astronomically unlikely, but a silent
	// overwrite would make a previously issued token undecryptable, so the
	// contract rejects it.
	ErrDuplicateRecordID = errors.Wrap(errors.ErrConflict, "encryption record id already exists")

	// ErrDecryptionFailed indicates the ciphertext could not be decrypted.
	//
	// This covers wrong key material, ciphertext that is not a block-size
	// multiple, invalid padding after decryption, and authentication tag
	// failures in AEAD modes. The specific cause is not disclosed to avoid
	// acting as a padding oracle.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrMalformedToken indicates the token text is not valid hex.
	ErrMalformedToken = errors.Wrap(errors.ErrInvalidInput, "malformed token")

	// ErrSerialization indicates the payload could not be serialized, or the
	// decrypted bytes are not a valid payload.
	ErrSerialization = errors.Wrap(errors.ErrInvalidInput, "payload serialization failed")

	// ErrInvalidKeyMaterial indicates stored key material is not the expected
	// size or encoding. A record in this state cannot decrypt anything.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrInternal, "invalid key material")

	// ErrStorageUnavailable indicates the record store could not be reached.
	ErrStorageUnavailable = errors.Wrap(errors.ErrUnavailable, "record store unavailable")

	// ErrUnsupportedMode indicates the configured cipher mode is not supported.
	ErrUnsupportedMode = errors.Wrap(errors.ErrInvalidInput, "unsupported cipher mode")
)

package service

import (
	"crypto/cipher"
	"fmt"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// AESGCMCipher implements the Cipher interface using AES-256-GCM.
//
// GCM provides authenticated encryption: any modification of the ciphertext
// fails decryption outright instead of producing garbage plaintext. The
// 16-byte record IV carries the 12-byte GCM nonce in its leading bytes; the
// remaining 4 bytes are unused. Since the key custodian never reuses a key,
// nonce uniqueness per key holds trivially.
type AESGCMCipher struct{}

// NewAESGCM creates a new AES-256-GCM cipher instance.
func NewAESGCM() *AESGCMCipher {
	return &AESGCMCipher{}
}

// Encrypt encrypts plaintext using AES-256-GCM. The returned ciphertext has
// the 16-byte authentication tag appended.
func (a *AESGCMCipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := gcmNonce(aead, iv)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext using AES-256-GCM, verifying the authentication
// tag. Returns domain.ErrDecryptionFailed on any tag or framing failure.
func (a *AESGCMCipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := gcmNonce(aead, iv)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, tokenDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}

// newGCM creates the GCM AEAD over a validated AES-256 block.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aead, nil
}

// gcmNonce derives the nonce from the leading bytes of the record IV.
func gcmNonce(aead cipher.AEAD, iv []byte) ([]byte, error) {
	if len(iv) != tokenDomain.IVSize {
		return nil, tokenDomain.ErrInvalidKeyMaterial
	}
	return iv[:aead.NonceSize()], nil
}

package service

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// ChaCha20Poly1305Cipher implements the Cipher interface using ChaCha20-Poly1305.
//
// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
// for authenticated encryption, with constant-time software performance on
// platforms without AES hardware acceleration. Like AESGCM, the 12-byte nonce
// is taken from the leading bytes of the 16-byte record IV.
type ChaCha20Poly1305Cipher struct{}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
func NewChaCha20Poly1305() *ChaCha20Poly1305Cipher {
	return &ChaCha20Poly1305Cipher{}
}

// Encrypt encrypts plaintext using ChaCha20-Poly1305. The returned ciphertext
// has the Poly1305 authentication tag appended.
func (c *ChaCha20Poly1305Cipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	aead, err := newChaCha20Poly1305(key)
	if err != nil {
		return nil, err
	}

	nonce, err := gcmNonce(aead, iv)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt decrypts ciphertext using ChaCha20-Poly1305, verifying the
// authentication tag. Returns domain.ErrDecryptionFailed on any tag failure.
func (c *ChaCha20Poly1305Cipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	aead, err := newChaCha20Poly1305(key)
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

// newChaCha20Poly1305 creates the AEAD over a validated 256-bit key.
func newChaCha20Poly1305(key []byte) (cipher.AEAD, error) {
	if len(key) != tokenDomain.KeySize {
		return nil, tokenDomain.ErrInvalidKeyMaterial
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return aead, nil
}

package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// AESCBCCipher implements the Cipher interface using AES-256 in CBC mode with
// PKCS#7 padding.
//
// CBC provides no integrity check: a tampered ciphertext decrypts to garbage
// rather than failing outright unless the padding happens to be invalid. The
// mode is safe here only because the key custodian issues a fresh key and IV
// for every single encryption and never reuses them. This is the compatibility
// mode for records issued in the original hex key/IV format; prefer AESGCM or
// ChaCha20 where compatibility is not required.
type AESCBCCipher struct{}

// NewAESCBC creates a new AES-256-CBC cipher instance.
func NewAESCBC() *AESCBCCipher {
	return &AESCBCCipher{}
}

// Encrypt encrypts plaintext using AES-256-CBC with PKCS#7 padding.
//
// The key must be 32 bytes and the IV 16 bytes. The same key/IV pair must
// never be used for more than one encryption.
func (a *AESCBCCipher) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != tokenDomain.IVSize {
		return nil, tokenDomain.ErrInvalidKeyMaterial
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext using AES-256-CBC and strips the PKCS#7 padding.
//
// Returns domain.ErrDecryptionFailed if the ciphertext length is not a
// block-size multiple or the padding is invalid after decryption. The cause is
// deliberately not distinguished in the returned error.
func (a *AESCBCCipher) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != tokenDomain.IVSize {
		return nil, tokenDomain.ErrInvalidKeyMaterial
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, tokenDomain.ErrDecryptionFailed
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, tokenDomain.ErrDecryptionFailed
	}

	return unpadded, nil
}

// newAESBlock validates the key size and creates the AES block cipher.
func newAESBlock(key []byte) (cipher.Block, error) {
	if len(key) != tokenDomain.KeySize {
		return nil, tokenDomain.ErrInvalidKeyMaterial
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return block, nil
}

// pkcs7Pad appends PKCS#7 padding to a block-size multiple. Input that is
// already aligned gains a full padding block so the unpad is unambiguous.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and removes PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}

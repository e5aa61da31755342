package service

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"gocloud.dev/secrets"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// hexProtector stores key material as plain hex text. This is the record
// format the service has always used when no KMS is configured.
type hexProtector struct{}

// NewHexKeyProtector creates a KeyProtector that hex-encodes key material.
func NewHexKeyProtector() KeyProtector {
	return &hexProtector{}
}

// Protect hex-encodes the key and IV.
func (h *hexProtector) Protect(_ context.Context, key, iv []byte) (string, string, error) {
	if len(key) != tokenDomain.KeySize || len(iv) != tokenDomain.IVSize {
		return "", "", tokenDomain.ErrInvalidKeyMaterial
	}
	return hex.EncodeToString(key), hex.EncodeToString(iv), nil
}

// Unprotect hex-decodes the stored key and IV text.
func (h *hexProtector) Unprotect(_ context.Context, keyText, ivText string) ([]byte, []byte, error) {
	return tokenDomain.DecodeHexKeyMaterial(keyText, ivText)
}

// kmsProtector wraps key material with a gocloud.dev secrets keeper before
// storage, so records at rest contain no usable keys without KMS access.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
type kmsProtector struct {
	keeper *secrets.Keeper
}

// NewKMSKeyProtector opens a secrets keeper for the given key URI and returns
// a KeyProtector that wraps key material with it. Close must be called on the
// returned protector during shutdown.
func NewKMSKeyProtector(ctx context.Context, keyURI string) (*kmsProtector, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return &kmsProtector{keeper: keeper}, nil
}

// Protect encrypts the key and IV with the keeper and base64-encodes the result.
func (k *kmsProtector) Protect(ctx context.Context, key, iv []byte) (string, string, error) {
	if len(key) != tokenDomain.KeySize || len(iv) != tokenDomain.IVSize {
		return "", "", tokenDomain.ErrInvalidKeyMaterial
	}

	wrappedKey, err := k.keeper.Encrypt(ctx, key)
	if err != nil {
		return "", "", fmt.Errorf("failed to wrap key: %w", err)
	}

	wrappedIV, err := k.keeper.Encrypt(ctx, iv)
	if err != nil {
		return "", "", fmt.Errorf("failed to wrap iv: %w", err)
	}

	return base64.StdEncoding.EncodeToString(wrappedKey),
		base64.StdEncoding.EncodeToString(wrappedIV),
		nil
}

// Unprotect base64-decodes and unwraps the stored key and IV text.
func (k *kmsProtector) Unprotect(ctx context.Context, keyText, ivText string) ([]byte, []byte, error) {
	wrappedKey, err := base64.StdEncoding.DecodeString(keyText)
	if err != nil {
		return nil, nil, tokenDomain.ErrInvalidKeyMaterial
	}

	wrappedIV, err := base64.StdEncoding.DecodeString(ivText)
	if err != nil {
		return nil, nil, tokenDomain.ErrInvalidKeyMaterial
	}

	key, err := k.keeper.Decrypt(ctx, wrappedKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unwrap key: %w", err)
	}

	iv, err := k.keeper.Decrypt(ctx, wrappedIV)
	if err != nil {
		tokenDomain.Zero(key)
		return nil, nil, fmt.Errorf("failed to unwrap iv: %w", err)
	}

	if len(key) != tokenDomain.KeySize || len(iv) != tokenDomain.IVSize {
		tokenDomain.Zero(key)
		tokenDomain.Zero(iv)
		return nil, nil, tokenDomain.ErrInvalidKeyMaterial
	}

	return key, iv, nil
}

// Close releases the underlying keeper.
func (k *kmsProtector) Close() error {
	return k.keeper.Close()
}

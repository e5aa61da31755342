package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestHexKeyProtector(t *testing.T) {
	ctx := context.Background()
	protector := NewHexKeyProtector()
	key, iv := generateKeyIV(t)

	t.Run("round trip", func(t *testing.T) {
		keyText, ivText, err := protector.Protect(ctx, key, iv)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(key), keyText)
		assert.Equal(t, hex.EncodeToString(iv), ivText)

		gotKey, gotIV, err := protector.Unprotect(ctx, keyText, ivText)
		require.NoError(t, err)
		assert.Equal(t, key, gotKey)
		assert.Equal(t, iv, gotIV)
	})

	t.Run("protect rejects wrong sizes", func(t *testing.T) {
		_, _, err := protector.Protect(ctx, key[:8], iv)
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidKeyMaterial)
	})

	t.Run("unprotect rejects invalid hex", func(t *testing.T) {
		_, _, err := protector.Unprotect(ctx, strings.Repeat("zz", 32), hex.EncodeToString(iv))
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidKeyMaterial)
	})
}

func TestKMSKeyProtector(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip with local keeper", func(t *testing.T) {
		protector, err := NewKMSKeyProtector(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, protector.Close())
		}()

		key, iv := generateKeyIV(t)

		keyText, ivText, err := protector.Protect(ctx, key, iv)
		require.NoError(t, err)
		// Wrapped material must not be the plain hex encoding
		assert.NotEqual(t, hex.EncodeToString(key), keyText)
		assert.NotEqual(t, hex.EncodeToString(iv), ivText)

		gotKey, gotIV, err := protector.Unprotect(ctx, keyText, ivText)
		require.NoError(t, err)
		assert.Equal(t, key, gotKey)
		assert.Equal(t, iv, gotIV)
	})

	t.Run("invalid key uri", func(t *testing.T) {
		protector, err := NewKMSKeyProtector(ctx, "invalid://uri")
		assert.Error(t, err)
		assert.Nil(t, protector)
	})

	t.Run("unprotect rejects invalid base64", func(t *testing.T) {
		protector, err := NewKMSKeyProtector(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, protector.Close())
		}()

		_, _, err = protector.Unprotect(ctx, "not-base64!!", "also-not-base64!!")
		assert.ErrorIs(t, err, tokenDomain.ErrInvalidKeyMaterial)
	})
}

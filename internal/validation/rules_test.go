package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tokens/internal/errors"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{
			name:      "valid hex",
			value:     "deadbeef",
			shouldErr: false,
		},
		{
			name:      "valid hex uppercase",
			value:     "DEADBEEF",
			shouldErr: false,
		},
		{
			name:      "empty string passes",
			value:     "",
			shouldErr: false,
		},
		{
			name:      "odd length",
			value:     "abc",
			shouldErr: true,
		},
		{
			name:      "non-hex characters",
			value:     "not-hex!",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Hex.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUUID(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{
			name:      "valid uuid",
			value:     "5f3c71aa-10d2-4b96-bfb7-1a2b3c4d5e6f",
			shouldErr: false,
		},
		{
			name:      "empty string passes",
			value:     "",
			shouldErr: false,
		},
		{
			name:      "garbage",
			value:     "not-a-uuid",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UUID.Validate(tt.value)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("value"))
	assert.NoError(t, NoWhitespace.Validate("two words"))
	assert.Error(t, NoWhitespace.Validate(" padded"))
	assert.Error(t, NoWhitespace.Validate("padded "))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("token: must not be blank"))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "must not be blank")
	})
}

package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   EncodeRequest
		shouldErr bool
	}{
		{
			name:      "valid request",
			request:   EncodeRequest{User: "alice", Data: map[string]any{"card": "4111"}},
			shouldErr: false,
		},
		{
			name:      "nil data is allowed",
			request:   EncodeRequest{User: "alice"},
			shouldErr: false,
		},
		{
			name:      "missing user",
			request:   EncodeRequest{Data: "x"},
			shouldErr: true,
		},
		{
			name:      "blank user",
			request:   EncodeRequest{User: "   ", Data: "x"},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeRequest_Validate(t *testing.T) {
	validID := uuid.Must(uuid.NewRandom()).String()

	tests := []struct {
		name      string
		request   DecodeRequest
		shouldErr bool
	}{
		{
			name: "valid request",
			request: DecodeRequest{
				Token:   "deadbeef",
				Context: TokenContext{TokenID: validID},
			},
			shouldErr: false,
		},
		{
			name: "missing token",
			request: DecodeRequest{
				Context: TokenContext{TokenID: validID},
			},
			shouldErr: true,
		},
		{
			name: "token not hex",
			request: DecodeRequest{
				Token:   "not-hex!",
				Context: TokenContext{TokenID: validID},
			},
			shouldErr: true,
		},
		{
			name: "missing token id",
			request: DecodeRequest{
				Token: "deadbeef",
			},
			shouldErr: true,
		},
		{
			name: "token id not a uuid",
			request: DecodeRequest{
				Token:   "deadbeef",
				Context: TokenContext{TokenID: "not-a-uuid"},
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeRequest_TokenID(t *testing.T) {
	id := uuid.Must(uuid.NewRandom())
	req := DecodeRequest{
		Token:   "deadbeef",
		Context: TokenContext{TokenID: id.String()},
	}

	parsed, err := req.TokenID()
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

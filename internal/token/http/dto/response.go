package dto

import (
	"github.com/google/uuid"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// EncodeResponse represents the result of encoding a payload.
type EncodeResponse struct {
	Token   string       `json:"token"`
	Context TokenContext `json:"context"`
}

// MapEncodeResponse builds an encode API response from the token and its record id.
func MapEncodeResponse(token string, id uuid.UUID) EncodeResponse {
	return EncodeResponse{
		Token: token,
		Context: TokenContext{
			TokenID: id.String(),
		},
	}
}

// DecodeResponse represents the recovered payload.
type DecodeResponse struct {
	User string `json:"user"`
	Data any    `json:"data"`
}

// MapDecodeResponse converts a domain payload to a decode API response.
func MapDecodeResponse(payload *tokenDomain.Payload) DecodeResponse {
	return DecodeResponse{
		User: payload.User,
		Data: payload.Data,
	}
}

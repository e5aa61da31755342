// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tokens/internal/validation"
)

// TokenContext carries the opaque token's retrieval handle between client and server.
type TokenContext struct {
	TokenID string `json:"tokenId"`
}

// EncodeRequest contains the payload to protect as an opaque token.
type EncodeRequest struct {
	User string `json:"user"`
	Data any    `json:"data"`
}

// Validate checks if the encode request is valid.
func (r *EncodeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.User,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// DecodeRequest contains the token and its context for payload recovery.
type DecodeRequest struct {
	Token   string       `json:"token"`
	Context TokenContext `json:"context"`
}

// Validate checks if the decode request is valid.
func (r *DecodeRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Hex,
		),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&r.Context,
		validation.Field(&r.Context.TokenID,
			validation.Required,
			customValidation.NotBlank,
			customValidation.UUID,
		),
	)
}

// TokenID parses the request's context token id as a UUID.
// Validate must pass before calling this.
func (r *DecodeRequest) TokenID() (uuid.UUID, error) {
	return uuid.Parse(r.Context.TokenID)
}

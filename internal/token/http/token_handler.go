// Package http provides HTTP handlers for opaque token encode and decode operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokens/internal/httputil"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	"github.com/allisson/tokens/internal/token/http/dto"
	tokenUseCase "github.com/allisson/tokens/internal/token/usecase"
	customValidation "github.com/allisson/tokens/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
// Coordinates encode and decode operations with TokenUseCase.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(useCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// EncodeHandler encrypts a payload into an opaque token with fresh key material.
// POST /v1/tokens/encode
// Returns 201 Created with the token and the context needed to decode it.
func (h *TokenHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	payload := &tokenDomain.Payload{
		User: req.User,
		Data: req.Data,
	}

	// Call use case
	token, id, err := h.tokenUseCase.Encode(c.Request.Context(), payload)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	response := dto.MapEncodeResponse(token, id)
	c.JSON(http.StatusCreated, response)
}

// DecodeHandler recovers the payload protected by a previously issued token.
// POST /v1/tokens/decode
// Returns 200 OK with the original user and data.
func (h *TokenHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	id, err := req.TokenID()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Call use case
	payload, err := h.tokenUseCase.Decode(c.Request.Context(), req.Token, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return response
	response := dto.MapDecodeResponse(payload)
	c.JSON(http.StatusOK, response)
}

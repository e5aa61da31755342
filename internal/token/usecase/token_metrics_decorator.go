package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/metrics"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encode records metrics for encode operations.
func (t *tokenUseCaseWithMetrics) Encode(
	ctx context.Context,
	payload *tokenDomain.Payload,
) (string, uuid.UUID, error) {
	start := time.Now()
	token, id, err := t.next.Encode(ctx, payload)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "encode", status)
	t.metrics.RecordDuration(ctx, "token", "encode", time.Since(start), status)

	return token, id, err
}

// Decode records metrics for decode operations.
func (t *tokenUseCaseWithMetrics) Decode(
	ctx context.Context,
	token string,
	id uuid.UUID,
) (*tokenDomain.Payload, error) {
	start := time.Now()
	payload, err := t.next.Decode(ctx, token, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "decode", status)
	t.metrics.RecordDuration(ctx, "token", "decode", time.Since(start), status)

	return payload, err
}

package usecase

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	tokenService "github.com/allisson/tokens/internal/token/service"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	recordRepo RecordRepository
	cipher     tokenService.Cipher
	keyIssuer  tokenService.KeyIssuer
	protector  tokenService.KeyProtector
}

// NewTokenUseCase creates a new TokenUseCase with injected dependencies.
func NewTokenUseCase(
	recordRepo RecordRepository,
	cipher tokenService.Cipher,
	keyIssuer tokenService.KeyIssuer,
	protector tokenService.KeyProtector,
) TokenUseCase {
	return &tokenUseCase{
		recordRepo: recordRepo,
		cipher:     cipher,
		keyIssuer:  keyIssuer,
		protector:  protector,
	}
}

// Encode encrypts a payload into an opaque hex token backed by a freshly
// issued and durably stored EncryptionRecord.
//
// Ordering is deliberate: the record is committed before the token is
// returned, so a persistence failure means no token. A token handed out
// without its record would be permanently undecryptable.
func (t *tokenUseCase) Encode(
	ctx context.Context,
	payload *tokenDomain.Payload,
) (string, uuid.UUID, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", uuid.Nil, apperrors.Wrap(tokenDomain.ErrSerialization, err.Error())
	}

	token, id, err := t.encodeOnce(ctx, plaintext)
	if apperrors.Is(err, tokenDomain.ErrDuplicateRecordID) {
		// An id collision means the random id already exists; retry once with
		// fresh material rather than failing the call.
		token, id, err = t.encodeOnce(ctx, plaintext)
	}
	if err != nil {
		return "", uuid.Nil, err
	}

	return token, id, nil
}

// encodeOnce performs a single issue-encrypt-persist attempt.
func (t *tokenUseCase) encodeOnce(ctx context.Context, plaintext []byte) (string, uuid.UUID, error) {
	id, key, iv, err := t.keyIssuer.Issue()
	if err != nil {
		return "", uuid.Nil, apperrors.Wrap(apperrors.ErrInternal, err.Error())
	}
	defer tokenDomain.Zero(key)
	defer tokenDomain.Zero(iv)

	ciphertext, err := t.cipher.Encrypt(plaintext, key, iv)
	if err != nil {
		return "", uuid.Nil, apperrors.Wrap(apperrors.ErrInternal, err.Error())
	}

	keyText, ivText, err := t.protector.Protect(ctx, key, iv)
	if err != nil {
		return "", uuid.Nil, apperrors.Wrap(apperrors.ErrInternal, err.Error())
	}

	record := &tokenDomain.EncryptionRecord{
		ID:        id,
		SecretKey: keyText,
		IV:        ivText,
		CreatedAt: time.Now().UTC(),
	}

	if err := t.recordRepo.Create(ctx, record); err != nil {
		return "", uuid.Nil, err
	}

	return hex.EncodeToString(ciphertext), id, nil
}

// Decode decrypts a previously issued token back into its payload.
func (t *tokenUseCase) Decode(
	ctx context.Context,
	token string,
	id uuid.UUID,
) (*tokenDomain.Payload, error) {
	record, err := t.recordRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ciphertext, err := hex.DecodeString(token)
	if err != nil {
		return nil, tokenDomain.ErrMalformedToken
	}

	key, iv, err := t.protector.Unprotect(ctx, record.SecretKey, record.IV)
	if err != nil {
		return nil, err
	}
	defer tokenDomain.Zero(key)
	defer tokenDomain.Zero(iv)

	plaintext, err := t.cipher.Decrypt(ciphertext, key, iv)
	if err != nil {
		return nil, err
	}

	var payload tokenDomain.Payload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, apperrors.Wrap(tokenDomain.ErrSerialization, err.Error())
	}

	return &payload, nil
}

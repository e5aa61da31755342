// Package repository implements EncryptionRecord persistence with dual
// database support (PostgreSQL and MySQL). Records are append-only: the
// repositories expose create and read, never update or delete.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// PostgreSQLRecordRepository implements EncryptionRecord persistence for PostgreSQL databases.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL record repository.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}

// Create inserts a new encryption record. A collision on id returns
// domain.ErrDuplicateRecordID rather than overwriting the existing record.
func (p *PostgreSQLRecordRepository) Create(
	ctx context.Context,
	record *tokenDomain.EncryptionRecord,
) error {
	query := `INSERT INTO encryption_records (id, secret_key, iv, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := p.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.SecretKey,
		record.IV,
		record.CreatedAt,
	)
	if err != nil {
		if isPostgreSQLDuplicateError(err) {
			return tokenDomain.ErrDuplicateRecordID
		}
		return apperrors.Wrap(tokenDomain.ErrStorageUnavailable, err.Error())
	}
	return nil
}

// Get retrieves an encryption record by its id.
func (p *PostgreSQLRecordRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*tokenDomain.EncryptionRecord, error) {
	query := `SELECT id, secret_key, iv, created_at
			  FROM encryption_records
			  WHERE id = $1`

	var record tokenDomain.EncryptionRecord

	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.SecretKey,
		&record.IV,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenDomain.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(tokenDomain.ErrStorageUnavailable, err.Error())
	}

	return &record, nil
}

// isPostgreSQLDuplicateError reports whether err is a unique constraint violation.
func isPostgreSQLDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

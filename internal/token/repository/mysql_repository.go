package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	apperrors "github.com/allisson/tokens/internal/errors"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

// MySQLRecordRepository implements EncryptionRecord persistence for MySQL databases.
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQL record repository.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

// Create inserts a new encryption record. A collision on id returns
// domain.ErrDuplicateRecordID rather than overwriting the existing record.
func (m *MySQLRecordRepository) Create(
	ctx context.Context,
	record *tokenDomain.EncryptionRecord,
) error {
	query := `INSERT INTO encryption_records (id, secret_key, iv, created_at)
			  VALUES (?, ?, ?, ?)`

	id, err := record.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal record id")
	}

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		record.SecretKey,
		record.IV,
		record.CreatedAt,
	)
	if err != nil {
		// Duplicate entry (MySQL error number 1062)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return tokenDomain.ErrDuplicateRecordID
		}
		return apperrors.Wrap(tokenDomain.ErrStorageUnavailable, err.Error())
	}
	return nil
}

// Get retrieves an encryption record by its id.
func (m *MySQLRecordRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*tokenDomain.EncryptionRecord, error) {
	query := `SELECT id, secret_key, iv, created_at
			  FROM encryption_records
			  WHERE id = ?`

	binID, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal record id")
	}

	var record tokenDomain.EncryptionRecord
	var rawID []byte

	err = m.db.QueryRowContext(ctx, query, binID).Scan(
		&rawID,
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

	record.ID, err = uuid.FromBytes(rawID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal record id")
	}

	return &record, nil
}

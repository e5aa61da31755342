package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/allisson/tokens/internal/token/domain"
)

func setupMySQLMock(t *testing.T) (*MySQLRecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMySQLRecordRepository(db), mock
}

func TestMySQLRecordRepository_Create(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta(`INSERT INTO encryption_records (id, secret_key, iv, created_at)
			  VALUES (?, ?, ?, ?)`)

	t.Run("success", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		record := testRecord()
		binID, err := record.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(insertQuery).
			WithArgs(binID, record.SecretKey, record.IV, record.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(ctx, record)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		record := testRecord()
		binID, err := record.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(insertQuery).
			WithArgs(binID, record.SecretKey, record.IV, record.CreatedAt).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err = repo.Create(ctx, record)
		assert.ErrorIs(t, err, tokenDomain.ErrDuplicateRecordID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		record := testRecord()
		binID, err := record.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec(insertQuery).
			WithArgs(binID, record.SecretKey, record.IV, record.CreatedAt).
			WillReturnError(errors.New("connection refused"))

		err = repo.Create(ctx, record)
		assert.ErrorIs(t, err, tokenDomain.ErrStorageUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLRecordRepository_Get(t *testing.T) {
	ctx := context.Background()
	selectQuery := regexp.QuoteMeta(`SELECT id, secret_key, iv, created_at
			  FROM encryption_records
			  WHERE id = ?`)

	t.Run("success", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		record := testRecord()
		binID, err := record.ID.MarshalBinary()
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{"id", "secret_key", "iv", "created_at"}).
			AddRow(binID, record.SecretKey, record.IV, record.CreatedAt)

		mock.ExpectQuery(selectQuery).
			WithArgs(binID).
			WillReturnRows(rows)

		got, err := repo.Get(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.SecretKey, got.SecretKey)
		assert.Equal(t, record.IV, got.IV)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		id := uuid.Must(uuid.NewRandom())
		binID, err := id.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectQuery(selectQuery).
			WithArgs(binID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "secret_key", "iv", "created_at"}))

		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, tokenDomain.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, mock := setupMySQLMock(t)
		id := uuid.Must(uuid.NewRandom())
		binID, err := id.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectQuery(selectQuery).
			WithArgs(binID).
			WillReturnError(errors.New("connection refused"))

		_, err = repo.Get(ctx, id)
		assert.ErrorIs(t, err, tokenDomain.ErrStorageUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

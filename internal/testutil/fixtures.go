package testutil

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestRecord inserts an encryption record fixture and returns its id.
// The key and iv are hex strings exactly as the repository layer stores them.
func CreateTestRecord(t *testing.T, db *sql.DB, dbType, secretKey, iv string) uuid.UUID {
	t.Helper()

	id, err := uuid.NewRandom()
	require.NoError(t, err, "failed to generate record id")

	var query string
	var idValue driver.Value

	switch dbType {
	case "mysql":
		query = "INSERT INTO encryption_records (id, secret_key, iv, created_at) VALUES (?, ?, ?, ?)"
		idValue = uuidToDriverValue(t, id)
	default:
		query = "INSERT INTO encryption_records (id, secret_key, iv, created_at) VALUES ($1, $2, $3, $4)"
		idValue = id.String()
	}

	_, err = db.Exec(query, idValue, secretKey, iv, time.Now().UTC())
	require.NoError(t, err, "failed to insert encryption record fixture")

	return id
}

// uuidToDriverValue converts a UUID to its binary form for MySQL BINARY(16) columns.
func uuidToDriverValue(t *testing.T, id uuid.UUID) driver.Value {
	t.Helper()

	b, err := id.MarshalBinary()
	require.NoError(t, err, "failed to marshal uuid to binary")

	return b
}

package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupIsIdempotent(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	// The DDL is guarded by IF NOT EXISTS, so running it twice succeeds both
	// times without touching the schema again.
	for i := 0; i < 2; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS clientes`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS rentas`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	repo := NewSchemaRepository(mockDB)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		assert.NoError(t, repo.CreateCoreTables(ctx))
		assert.NoError(t, repo.CreateRentasTable(ctx))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

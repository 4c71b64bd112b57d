package repository

import (
	"context"
	"testing"
	"time"

	"arcyrent/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestCreateWithCheckInsertsWhenAvailable(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentas`).
		WithArgs(3, "2024-01-01", "2024-01-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO rentas`).
		WithArgs(3, "2024-01-01", "2024-01-03", "", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
	mock.ExpectCommit()

	repo := NewRentaRepository(mockDB)
	renta := &db.Renta{
		VehiculoID:  3,
		FechaInicio: mustDate(t, "2024-01-01"),
		FechaFin:    mustDate(t, "2024-01-03"),
		Status:      "active",
	}
	err = repo.CreateWithCheck(context.Background(), renta)
	assert.NoError(t, err)
	assert.Equal(t, 7, renta.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithCheckRefusesOverlap(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentas`).
		WithArgs(3, "2024-01-02", "2024-01-04").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	repo := NewRentaRepository(mockDB)
	renta := &db.Renta{
		VehiculoID:  3,
		FechaInicio: mustDate(t, "2024-01-02"),
		FechaFin:    mustDate(t, "2024-01-04"),
		Status:      "active",
	}
	err = repo.CreateWithCheck(context.Background(), renta)
	assert.ErrorIs(t, err, ErrNoDisponible)
	assert.Equal(t, 0, renta.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOverlappingUsesInclusiveBounds(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	// A booking [2024-01-01, 2024-01-05] must collide with a request
	// starting exactly on day 5.
	mock.ExpectQuery(`fecha_inicio <= \$3 AND fecha_fin >= \$2`).
		WithArgs(1, "2024-01-05", "2024-01-07").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	repo := NewRentaRepository(mockDB)
	count, err := repo.CountOverlapping(context.Background(), 1,
		mustDate(t, "2024-01-05"), mustDate(t, "2024-01-07"))
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRentasNewestFirst(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery(`FROM rentas ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "vehiculo_id", "fecha_inicio", "fecha_fin", "factura_id", "status"}).
			AddRow(2, 1, mustDate(t, "2024-02-01"), mustDate(t, "2024-02-03"), "F-2", "active").
			AddRow(1, 1, mustDate(t, "2024-01-01"), mustDate(t, "2024-01-03"), nil, "finished"))

	repo := NewRentaRepository(mockDB)
	rentas, err := repo.List(context.Background())
	assert.NoError(t, err)
	require.Len(t, rentas, 2)
	assert.Equal(t, 2, rentas[0].ID)
	assert.Equal(t, "2024-02-01", rentas[0].FechaInicio)
	assert.Equal(t, "F-2", rentas[0].FacturaID)
	assert.Equal(t, "", rentas[1].FacturaID)
	assert.Equal(t, "finished", rentas[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"arcyrent/internal/db"
	"arcyrent/internal/entities"

	"github.com/lib/pq"
)

// ErrNoDisponible reports an overlapping active renta for the same vehicle.
var ErrNoDisponible = errors.New("vehicle unavailable")

// ErrVehiculoInexistente reports a renta referencing a vehicle that does not exist.
var ErrVehiculoInexistente = errors.New("vehiculo does not exist")

const foreignKeyViolation = "23503"

type RentaRepository struct {
	DB *sql.DB
}

func NewRentaRepository(db *sql.DB) *RentaRepository {
	return &RentaRepository{DB: db}
}

// CountOverlapping counts active rentas for the vehicle whose inclusive date
// range intersects [inicio, fin]. Touching boundaries count as overlap.
func (r *RentaRepository) CountOverlapping(ctx context.Context, vehiculoID int, inicio, fin time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM rentas
		WHERE vehiculo_id = $1 AND status = 'active'
			AND fecha_inicio <= $3 AND fecha_fin >= $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, vehiculoID,
		inicio.Format("2006-01-02"), fin.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting overlapping rentas: %w", err)
	}
	return count, nil
}

// CreateWithCheck runs the overlap check and the insert inside one
// transaction. Callers serialize per vehicle; this keeps the two statements
// atomic with respect to the store.
func (r *RentaRepository) CreateWithCheck(ctx context.Context, renta *db.Renta) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning renta transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	queryCount := `
		SELECT COUNT(*) FROM rentas
		WHERE vehiculo_id = $1 AND status = 'active'
			AND fecha_inicio <= $3 AND fecha_fin >= $2`
	var count int
	err = tx.QueryRowContext(ctx, queryCount, renta.VehiculoID,
		renta.FechaInicio.Format("2006-01-02"), renta.FechaFin.Format("2006-01-02")).Scan(&count)
	if err != nil {
		return fmt.Errorf("error checking availability in tx: %w", err)
	}
	if count > 0 {
		return ErrNoDisponible
	}

	queryInsert := `
		INSERT INTO rentas (vehiculo_id, fecha_inicio, fecha_fin, factura_id, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, queryInsert,
		renta.VehiculoID,
		renta.FechaInicio.Format("2006-01-02"),
		renta.FechaFin.Format("2006-01-02"),
		renta.FacturaID,
		renta.Status,
	).Scan(&renta.ID, &renta.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return ErrVehiculoInexistente
		}
		return fmt.Errorf("error creating renta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing renta: %w", err)
	}
	return nil
}

func (r *RentaRepository) List(ctx context.Context) ([]entities.RentaResponse, error) {
	query := `
		SELECT id, vehiculo_id, fecha_inicio, fecha_fin, factura_id, status
		FROM rentas ORDER BY id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying rentas: %w", err)
	}
	defer rows.Close()

	var rentas []entities.RentaResponse
	for rows.Next() {
		var res entities.RentaResponse
		var inicio, fin sql.NullTime
		var facturaID sql.NullString
		if err := rows.Scan(&res.ID, &res.VehiculoID, &inicio, &fin, &facturaID, &res.Status); err != nil {
			return nil, fmt.Errorf("error scanning renta: %w", err)
		}
		if inicio.Valid {
			res.FechaInicio = inicio.Time.Format("2006-01-02")
		}
		if fin.Valid {
			res.FechaFin = fin.Time.Format("2006-01-02")
		}
		res.FacturaID = facturaID.String
		rentas = append(rentas, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rentas: %w", err)
	}
	return rentas, nil
}

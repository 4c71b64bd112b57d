package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"arcyrent/internal/db"
	"arcyrent/internal/entities"

	"github.com/lib/pq"
)

var (
	ErrClienteNotFound  = errors.New("cliente not found")
	ErrVehiculoNotFound = errors.New("vehiculo not found")
)

const uniqueViolation = "23505"

type FacturaRepository struct {
	DB *sql.DB
}

func NewFacturaRepository(db *sql.DB) *FacturaRepository {
	return &FacturaRepository{DB: db}
}

func (r *FacturaRepository) Create(ctx context.Context, f *db.Factura) error {
	query := `
		INSERT INTO facturas (id, fecha, cliente_id, vehiculo_id, dias, precio_dia, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.Fecha, f.ClienteID, f.VehiculoID, f.Dias, f.PrecioDia, f.Total)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("factura '%s' already exists: %w", f.ID, err)
		}
		return fmt.Errorf("error creating factura: %w", err)
	}
	return nil
}

// ResolveCliente maps a client name to its newest matching row.
func (r *FacturaRepository) ResolveCliente(ctx context.Context, nombre string) (int, error) {
	var id int
	query := `SELECT id FROM clientes WHERE nombre = $1 ORDER BY id DESC LIMIT 1`
	err := r.DB.QueryRowContext(ctx, query, nombre).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrClienteNotFound
		}
		return 0, fmt.Errorf("error resolving cliente '%s': %w", nombre, err)
	}
	return id, nil
}

// ResolveVehiculo maps a plate, or failing that a make/model descriptor, to
// the newest matching vehicle row.
func (r *FacturaRepository) ResolveVehiculo(ctx context.Context, placa, descriptor string) (int, error) {
	var id int
	var err error
	if placa != "" {
		query := `SELECT id FROM vehiculos WHERE placa = $1 ORDER BY id DESC LIMIT 1`
		err = r.DB.QueryRowContext(ctx, query, placa).Scan(&id)
	} else {
		query := `
			SELECT id FROM vehiculos
			WHERE CONCAT(marca, ' ', modelo) = $1 OR modelo = $1
			ORDER BY id DESC LIMIT 1`
		err = r.DB.QueryRowContext(ctx, query, descriptor).Scan(&id)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrVehiculoNotFound
		}
		return 0, fmt.Errorf("error resolving vehiculo: %w", err)
	}
	return id, nil
}

func (r *FacturaRepository) List(ctx context.Context) ([]entities.FacturaResponse, error) {
	query := `
		SELECT f.id, f.fecha, c.nombre, c.telefono,
			CONCAT(v.marca, ' ', v.modelo), v.placa,
			f.dias, f.precio_dia, f.total
		FROM facturas f
		JOIN clientes c ON f.cliente_id = c.id
		JOIN vehiculos v ON f.vehiculo_id = v.id
		ORDER BY f.fecha DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying facturas: %w", err)
	}
	defer rows.Close()

	var facturas []entities.FacturaResponse
	for rows.Next() {
		var f entities.FacturaResponse
		var fecha sql.NullTime
		if err := rows.Scan(&f.ID, &fecha, &f.ClienteNombre, &f.ClienteTelefono,
			&f.Vehiculo, &f.Placa, &f.Dias, &f.PrecioDia, &f.Total); err != nil {
			return nil, fmt.Errorf("error scanning factura: %w", err)
		}
		if fecha.Valid {
			f.Fecha = fecha.Time.Format("2006-01-02")
		}
		facturas = append(facturas, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating facturas: %w", err)
	}
	return facturas, nil
}

// GetContacto returns the client name and phone behind a factura, for the
// booking confirmation SMS.
func (r *FacturaRepository) GetContacto(ctx context.Context, facturaID string) (string, string, error) {
	query := `
		SELECT c.nombre, c.telefono
		FROM facturas f
		JOIN clientes c ON f.cliente_id = c.id
		WHERE f.id = $1`
	var nombre, telefono string
	err := r.DB.QueryRowContext(ctx, query, facturaID).Scan(&nombre, &telefono)
	if err != nil {
		return "", "", fmt.Errorf("error querying contacto for factura '%s': %w", facturaID, err)
	}
	return nombre, telefono, nil
}

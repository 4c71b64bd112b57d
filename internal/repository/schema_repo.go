package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SchemaRepository struct {
	DB *sql.DB
}

func NewSchemaRepository(db *sql.DB) *SchemaRepository {
	return &SchemaRepository{DB: db}
}

// Now probes the database connection.
func (r *SchemaRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.DB.QueryRowContext(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("error probing database: %w", err)
	}
	return now, nil
}

// CreateCoreTables creates clientes, vehiculos and facturas. Safe to call
// repeatedly: every statement is guarded by IF NOT EXISTS.
func (r *SchemaRepository) CreateCoreTables(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS clientes (
		id SERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		telefono TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS vehiculos (
		id SERIAL PRIMARY KEY,
		marca TEXT,
		modelo TEXT,
		placa TEXT NOT NULL DEFAULT '',
		precio_dia NUMERIC NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS facturas (
		id TEXT PRIMARY KEY,
		fecha DATE NOT NULL,
		cliente_id INTEGER NOT NULL REFERENCES clientes(id),
		vehiculo_id INTEGER NOT NULL REFERENCES vehiculos(id),
		dias INTEGER NOT NULL,
		precio_dia NUMERIC NOT NULL,
		total NUMERIC NOT NULL
	);
	`
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("error creating core tables: %w", err)
	}
	return nil
}

// CreateRentasTable creates the rentas table, idempotently.
func (r *SchemaRepository) CreateRentasTable(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS rentas (
		id SERIAL PRIMARY KEY,
		vehiculo_id INTEGER NOT NULL REFERENCES vehiculos(id),
		fecha_inicio DATE NOT NULL,
		fecha_fin DATE NOT NULL,
		factura_id TEXT REFERENCES facturas(id),
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (fecha_inicio <= fecha_fin)
	);
	`
	if _, err := r.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("error creating rentas table: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"arcyrent/internal/db"
)

type ClienteRepository struct {
	DB *sql.DB
}

func NewClienteRepository(db *sql.DB) *ClienteRepository {
	return &ClienteRepository{DB: db}
}

func (r *ClienteRepository) Create(ctx context.Context, c *db.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, telefono)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, c.Nombre, c.Telefono).Scan(&c.ID); err != nil {
		return fmt.Errorf("error creating cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepository) List(ctx context.Context) ([]db.Cliente, error) {
	query := `SELECT id, nombre, telefono FROM clientes ORDER BY id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying clientes: %w", err)
	}
	defer rows.Close()

	var clientes []db.Cliente
	for rows.Next() {
		var c db.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono); err != nil {
			return nil, fmt.Errorf("error scanning cliente: %w", err)
		}
		clientes = append(clientes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating clientes: %w", err)
	}
	return clientes, nil
}

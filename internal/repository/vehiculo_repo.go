package repository

import (
	"context"
	"database/sql"
	"fmt"

	"arcyrent/internal/db"
)

type VehiculoRepository struct {
	DB *sql.DB
}

func NewVehiculoRepository(db *sql.DB) *VehiculoRepository {
	return &VehiculoRepository{DB: db}
}

func (r *VehiculoRepository) Create(ctx context.Context, v *db.Vehiculo) error {
	query := `
		INSERT INTO vehiculos (marca, modelo, placa, precio_dia)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, v.Marca, v.Modelo, v.Placa, v.PrecioDia).Scan(&v.ID); err != nil {
		return fmt.Errorf("error creating vehiculo: %w", err)
	}
	return nil
}

func (r *VehiculoRepository) List(ctx context.Context) ([]db.Vehiculo, error) {
	query := `SELECT id, marca, modelo, placa, precio_dia FROM vehiculos ORDER BY id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying vehiculos: %w", err)
	}
	defer rows.Close()

	var vehiculos []db.Vehiculo
	for rows.Next() {
		var v db.Vehiculo
		var marca, modelo sql.NullString
		if err := rows.Scan(&v.ID, &marca, &modelo, &v.Placa, &v.PrecioDia); err != nil {
			return nil, fmt.Errorf("error scanning vehiculo: %w", err)
		}
		v.Marca = marca.String
		v.Modelo = modelo.String
		vehiculos = append(vehiculos, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehiculos: %w", err)
	}
	return vehiculos, nil
}

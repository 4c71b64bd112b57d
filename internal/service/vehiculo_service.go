package service

import (
	"context"

	"arcyrent/internal/db"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/repository"
)

type VehiculoService struct {
	Repo *repository.VehiculoRepository
}

func NewVehiculoService(repo *repository.VehiculoRepository) *VehiculoService {
	return &VehiculoService{Repo: repo}
}

// CreateVehiculo registers a vehicle. Duplicate plates are accepted; plates
// are not unique in this fleet model.
func (s *VehiculoService) CreateVehiculo(ctx context.Context, v *db.Vehiculo) (*db.Vehiculo, error) {
	if v.PrecioDia < 0 {
		return nil, apperrors.NewValidationError("precio_dia must not be negative")
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehiculoService) ListVehiculos(ctx context.Context) ([]db.Vehiculo, error) {
	return s.Repo.List(ctx)
}

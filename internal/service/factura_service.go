package service

import (
	"context"
	"errors"
	"time"

	"arcyrent/internal/db"
	"arcyrent/internal/entities"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/repository"
)

type FacturaService struct {
	Repo *repository.FacturaRepository
}

func NewFacturaService(repo *repository.FacturaRepository) *FacturaService {
	return &FacturaService{Repo: repo}
}

// CreateFactura validates presence of the required fields, resolves the
// client and vehicle references when the request carries the denormalized
// form, and inserts the row.
func (s *FacturaService) CreateFactura(ctx context.Context, req entities.FacturaRequest) error {
	if req.ID == "" {
		return apperrors.NewValidationError("id is required")
	}
	if req.Fecha == "" {
		return apperrors.NewValidationError("fecha is required")
	}
	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return apperrors.NewValidationError("invalid fecha, expected YYYY-MM-DD")
	}
	if req.ClienteID == nil && req.ClienteNombre == "" {
		return apperrors.NewValidationError("cliente_id or cliente_nombre is required")
	}
	if req.VehiculoID == nil && req.Placa == "" && req.Vehiculo == "" {
		return apperrors.NewValidationError("vehiculo_id, placa or vehiculo is required")
	}
	if req.Dias == nil {
		return apperrors.NewValidationError("dias is required")
	}
	if req.PrecioDia == nil {
		return apperrors.NewValidationError("precio_dia is required")
	}
	if req.Total == nil {
		return apperrors.NewValidationError("total is required")
	}
	if *req.Dias <= 0 {
		return apperrors.NewValidationError("dias must be positive")
	}

	clienteID, err := s.resolveCliente(ctx, req)
	if err != nil {
		return err
	}
	vehiculoID, err := s.resolveVehiculo(ctx, req)
	if err != nil {
		return err
	}

	factura := &db.Factura{
		ID:         req.ID,
		Fecha:      fecha,
		ClienteID:  clienteID,
		VehiculoID: vehiculoID,
		Dias:       *req.Dias,
		PrecioDia:  *req.PrecioDia,
		Total:      *req.Total,
	}
	return s.Repo.Create(ctx, factura)
}

func (s *FacturaService) resolveCliente(ctx context.Context, req entities.FacturaRequest) (int, error) {
	if req.ClienteID != nil {
		return *req.ClienteID, nil
	}
	id, err := s.Repo.ResolveCliente(ctx, req.ClienteNombre)
	if errors.Is(err, repository.ErrClienteNotFound) {
		return 0, apperrors.NewValidationError("cliente_nombre does not match any registered cliente")
	}
	return id, err
}

func (s *FacturaService) resolveVehiculo(ctx context.Context, req entities.FacturaRequest) (int, error) {
	if req.VehiculoID != nil {
		return *req.VehiculoID, nil
	}
	id, err := s.Repo.ResolveVehiculo(ctx, req.Placa, req.Vehiculo)
	if errors.Is(err, repository.ErrVehiculoNotFound) {
		return 0, apperrors.NewValidationError("placa/vehiculo does not match any registered vehiculo")
	}
	return id, err
}

func (s *FacturaService) ListFacturas(ctx context.Context) ([]entities.FacturaResponse, error) {
	return s.Repo.List(ctx)
}

package service

import (
	"context"

	"arcyrent/internal/db"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/repository"
)

type ClienteService struct {
	Repo *repository.ClienteRepository
}

func NewClienteService(repo *repository.ClienteRepository) *ClienteService {
	return &ClienteService{Repo: repo}
}

func (s *ClienteService) CreateCliente(ctx context.Context, nombre, telefono string) (*db.Cliente, error) {
	if nombre == "" {
		return nil, apperrors.NewValidationError("nombre is required")
	}
	cliente := &db.Cliente{Nombre: nombre, Telefono: telefono}
	if err := s.Repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) ListClientes(ctx context.Context) ([]db.Cliente, error) {
	return s.Repo.List(ctx)
}

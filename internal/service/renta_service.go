package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"arcyrent/internal/db"
	"arcyrent/internal/entities"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/repository"
)

const (
	statusActive   = "active"
	statusFinished = "finished"

	fechaLayout = "2006-01-02"
)

type RentaService struct {
	Repo     *repository.RentaRepository
	Facturas *repository.FacturaRepository

	// SendSMS is swappable in tests.
	SendSMS func(to, message string) error

	locks sync.Map // vehiculo id -> *sync.Mutex
}

func NewRentaService(repo *repository.RentaRepository, facturas *repository.FacturaRepository) *RentaService {
	return &RentaService{
		Repo:     repo,
		Facturas: facturas,
		SendSMS:  SendSMS,
	}
}

// vehiculoLock serializes bookings per vehicle. The store is only reached
// from this process, so a keyed mutex is enough to close the
// check-then-insert race.
func (s *RentaService) vehiculoLock(vehiculoID int) *sync.Mutex {
	m, _ := s.locks.LoadOrStore(vehiculoID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

func parseRango(inicioStr, finStr string) (time.Time, time.Time, error) {
	if inicioStr == "" || finStr == "" {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("fecha_inicio and fecha_fin are required")
	}
	inicio, err := time.Parse(fechaLayout, inicioStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid fecha_inicio, expected YYYY-MM-DD")
	}
	fin, err := time.Parse(fechaLayout, finStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("invalid fecha_fin, expected YYYY-MM-DD")
	}
	if inicio.After(fin) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("fecha_inicio must not be after fecha_fin")
	}
	return inicio, fin, nil
}

// CheckDisponibilidad reports whether the vehicle has no active renta
// overlapping the inclusive range [inicio, fin].
func (s *RentaService) CheckDisponibilidad(ctx context.Context, vehiculoID int, inicioStr, finStr string) (bool, error) {
	if vehiculoID <= 0 {
		return false, apperrors.NewValidationError("vehiculo_id is required")
	}
	inicio, fin, err := parseRango(inicioStr, finStr)
	if err != nil {
		return false, err
	}
	count, err := s.Repo.CountOverlapping(ctx, vehiculoID, inicio, fin)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateRenta books the vehicle for the range unless an active renta
// overlaps it. The check and the insert run under the per-vehicle lock.
func (s *RentaService) CreateRenta(ctx context.Context, req entities.RentaRequest) (*db.Renta, error) {
	if req.VehiculoID <= 0 {
		return nil, apperrors.NewValidationError("vehiculo_id is required")
	}
	inicio, fin, err := parseRango(req.FechaInicio, req.FechaFin)
	if err != nil {
		return nil, err
	}

	renta := &db.Renta{
		VehiculoID:  req.VehiculoID,
		FechaInicio: inicio,
		FechaFin:    fin,
		FacturaID:   req.FacturaID,
		Status:      statusActive,
	}

	mu := s.vehiculoLock(req.VehiculoID)
	mu.Lock()
	err = s.Repo.CreateWithCheck(ctx, renta)
	mu.Unlock()
	if err != nil {
		if errors.Is(err, repository.ErrNoDisponible) {
			return nil, apperrors.NewConflictError("vehicle unavailable")
		}
		if errors.Is(err, repository.ErrVehiculoInexistente) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, err
	}

	if renta.FacturaID != "" {
		go s.sendConfirmacion(renta)
	}
	return renta, nil
}

func (s *RentaService) ListRentas(ctx context.Context) ([]entities.RentaResponse, error) {
	return s.Repo.List(ctx)
}

func (s *RentaService) sendConfirmacion(renta *db.Renta) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	nombre, telefono, err := s.Facturas.GetContacto(ctx, renta.FacturaID)
	if err != nil {
		log.Printf("ALERTA: renta %d created, could not look up contact for SMS: %v", renta.ID, err)
		return
	}
	if telefono == "" {
		return
	}

	msg := fmt.Sprintf("Arcy Rent Car: tu renta del %s al %s esta confirmada.\nFactura: %s.\nGracias, %s.",
		renta.FechaInicio.Format(fechaLayout), renta.FechaFin.Format(fechaLayout), renta.FacturaID, nombre)
	if err := s.SendSMS(telefono, msg); err != nil {
		log.Printf("ALERTA: renta %d created, but confirmation SMS to %s failed: %v", renta.ID, telefono, err)
	}
}

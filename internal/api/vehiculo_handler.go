package api

import (
	"encoding/json"
	"net/http"

	"arcyrent/internal/db"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/service"
)

type VehiculoHandler struct {
	Service *service.VehiculoService
}

func NewVehiculoHandler(svc *service.VehiculoService) *VehiculoHandler {
	return &VehiculoHandler{Service: svc}
}

func (h *VehiculoHandler) CreateVehiculo(w http.ResponseWriter, r *http.Request) {
	var req CreateVehiculoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	vehiculo, err := h.Service.CreateVehiculo(ctx, &db.Vehiculo{
		Marca:     req.Marca,
		Modelo:    req.Modelo,
		Placa:     req.Placa,
		PrecioDia: req.PrecioDia,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehiculo)
}

func (h *VehiculoHandler) ListVehiculos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	vehiculos, err := h.Service.ListVehiculos(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehiculos == nil {
		vehiculos = []db.Vehiculo{}
	}
	writeJSON(w, http.StatusOK, vehiculos)
}

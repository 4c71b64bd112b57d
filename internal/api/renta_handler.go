package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"arcyrent/internal/entities"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/service"

	"github.com/gorilla/mux"
)

type RentaHandler struct {
	Service *service.RentaService
}

func NewRentaHandler(svc *service.RentaService) *RentaHandler {
	return &RentaHandler{Service: svc}
}

func (h *RentaHandler) CheckDisponibilidad(w http.ResponseWriter, r *http.Request) {
	vehiculoID, err := strconv.Atoi(mux.Vars(r)["vehiculo_id"])
	if err != nil {
		writeError(w, apperrors.NewValidationError("invalid vehiculo_id"))
		return
	}
	inicio := r.URL.Query().Get("inicio")
	fin := r.URL.Query().Get("fin")

	ctx, cancel := requestContext(r)
	defer cancel()

	disponible, err := h.Service.CheckDisponibilidad(ctx, vehiculoID, inicio, fin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.DisponibilidadResponse{Disponible: disponible})
}

func (h *RentaHandler) CreateRenta(w http.ResponseWriter, r *http.Request) {
	var req entities.RentaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	renta, err := h.Service.CreateRenta(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "Renta creada correctamente",
		"renta_id": renta.ID,
	})
}

func (h *RentaHandler) ListRentas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	rentas, err := h.Service.ListRentas(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentas == nil {
		rentas = []entities.RentaResponse{}
	}
	writeJSON(w, http.StatusOK, rentas)
}

package api

import (
	"encoding/json"
	"net/http"

	"arcyrent/internal/entities"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/service"
)

type FacturaHandler struct {
	Service *service.FacturaService
}

func NewFacturaHandler(svc *service.FacturaService) *FacturaHandler {
	return &FacturaHandler{Service: svc}
}

func (h *FacturaHandler) CreateFactura(w http.ResponseWriter, r *http.Request) {
	var req entities.FacturaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.Service.CreateFactura(ctx, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "Factura registrada correctamente"})
}

func (h *FacturaHandler) ListFacturas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	facturas, err := h.Service.ListFacturas(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if facturas == nil {
		facturas = []entities.FacturaResponse{}
	}
	writeJSON(w, http.StatusOK, facturas)
}

package api

import (
	"encoding/json"
	"net/http"

	"arcyrent/internal/db"
	apperrors "arcyrent/internal/errors"
	"arcyrent/internal/service"
)

type ClienteHandler struct {
	Service *service.ClienteService
}

func NewClienteHandler(svc *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{Service: svc}
}

func (h *ClienteHandler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	var req CreateClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidationError("invalid request body"))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	cliente, err := h.Service.CreateCliente(ctx, req.Nombre, req.Telefono)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cliente)
}

func (h *ClienteHandler) ListClientes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	clientes, err := h.Service.ListClientes(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if clientes == nil {
		clientes = []db.Cliente{}
	}
	writeJSON(w, http.StatusOK, clientes)
}

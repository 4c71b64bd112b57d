package api

import (
	"net/http"
	"time"

	"arcyrent/internal/repository"
)

type SystemHandler struct {
	Repo *repository.SchemaRepository
}

func NewSystemHandler(repo *repository.SchemaRepository) *SystemHandler {
	return &SystemHandler{Repo: repo}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "Servidor Arcy Rent Car ONLINE"})
}

func (h *SystemHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	now, err := h.Repo.Now(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"database": "OK",
		"time":     now.Format(time.RFC3339),
	})
}

func (h *SystemHandler) SetupDB(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.Repo.CreateCoreTables(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "Tablas creadas correctamente"})
}

func (h *SystemHandler) SetupRentas(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	if err := h.Repo.CreateRentasTable(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "Tabla rentas creada correctamente"})
}

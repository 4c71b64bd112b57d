package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "arcyrent/internal/errors"
)

// dbTimeout bounds every store round-trip made on behalf of a request.
const dbTimeout = 5 * time.Second

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), dbTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperrors.Status(err), ErrorResponse{Error: err.Error()})
}

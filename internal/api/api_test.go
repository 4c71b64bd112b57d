package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arcyrent/internal/repository"
	"arcyrent/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	facturaRepo := repository.NewFacturaRepository(mockDB)
	rentaSvc := service.NewRentaService(repository.NewRentaRepository(mockDB), facturaRepo)
	rentaSvc.SendSMS = func(to, message string) error { return nil }

	router := NewRouter(
		NewSystemHandler(repository.NewSchemaRepository(mockDB)),
		NewClienteHandler(service.NewClienteService(repository.NewClienteRepository(mockDB))),
		NewVehiculoHandler(service.NewVehiculoService(repository.NewVehiculoRepository(mockDB))),
		NewFacturaHandler(service.NewFacturaService(facturaRepo)),
		NewRentaHandler(rentaSvc),
	)
	return router, mock
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRootLiveness(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Status, "ONLINE")
}

func TestTestDB(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT NOW\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(time.Now()))

	rec := doJSON(t, router, http.MethodGet, "/test-db", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["database"])
	assert.NotEmpty(t, resp["time"])
}

func TestTestDBFailure(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT NOW\(\)`).
		WillReturnError(assert.AnError)

	rec := doJSON(t, router, http.MethodGet, "/test-db", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestSetupEndpointsIdempotent(t *testing.T) {
	router, mock := newTestRouter(t)
	for i := 0; i < 2; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS clientes`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	for i := 0; i < 2; i++ {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS rentas`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodGet, "/setup-db", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	for i := 0; i < 2; i++ {
		rec := doJSON(t, router, http.MethodGet, "/setup-rentas", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClienteMissingNombre(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/clientes", map[string]string{"telefono": "809"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateFacturaMissingDias(t *testing.T) {
	router, mock := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/facturas", map[string]interface{}{
		"id":          "F-1",
		"fecha":       "2024-01-01",
		"cliente_id":  1,
		"vehiculo_id": 1,
		"precio_dia":  50,
		"total":       150,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Nothing was persisted.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRentaConflictResponse(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentas`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	rec := doJSON(t, router, http.MethodPost, "/rentas", map[string]interface{}{
		"vehiculo_id":  1,
		"fecha_inicio": "2024-01-01",
		"fecha_fin":    "2024-01-03",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "vehicle unavailable", resp.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Full flow: register a client and a vehicle, book the vehicle, see the
// booking listed and the overlapping range reported unavailable.
func TestEndToEndRentalFlow(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`INSERT INTO clientes`).
		WithArgs("Ana", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	mock.ExpectQuery(`INSERT INTO vehiculos`).
		WithArgs("Toyota", "Corolla", "ABC123", 50.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentas`).
		WithArgs(1, "2024-01-01", "2024-01-03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO rentas`).
		WithArgs(1, "2024-01-01", "2024-01-03", "", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectCommit()

	inicio, _ := time.Parse("2006-01-02", "2024-01-01")
	fin, _ := time.Parse("2006-01-02", "2024-01-03")
	mock.ExpectQuery(`FROM rentas ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "vehiculo_id", "fecha_inicio", "fecha_fin", "factura_id", "status"}).
			AddRow(1, 1, inicio, fin, nil, "active"))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rentas`).
		WithArgs(1, "2024-01-02", "2024-01-02").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rec := doJSON(t, router, http.MethodPost, "/clientes", map[string]string{"nombre": "Ana"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/vehiculos", map[string]interface{}{
		"marca": "Toyota", "modelo": "Corolla", "placa": "ABC123", "precio_dia": 50,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/rentas", map[string]interface{}{
		"vehiculo_id": 1, "fecha_inicio": "2024-01-01", "fecha_fin": "2024-01-03",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/rentas", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rentas []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rentas))
	require.Len(t, rentas, 1)
	assert.Equal(t, "active", rentas[0]["status"])

	rec = doJSON(t, router, http.MethodGet, "/disponibilidad/1?inicio=2024-01-02&fin=2024-01-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var disp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &disp))
	assert.False(t, disp["disponible"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisponibilidadRejectsMalformedInput(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/disponibilidad/1?inicio=bad&fin=2024-01-02", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/disponibilidad/1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

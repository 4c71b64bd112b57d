package entities

type RentaRequest struct {
	VehiculoID  int    `json:"vehiculo_id"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	FacturaID   string `json:"factura_id,omitempty"`
}

type RentaResponse struct {
	ID          int    `json:"id"`
	VehiculoID  int    `json:"vehiculo_id"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	FacturaID   string `json:"factura_id,omitempty"`
	Status      string `json:"status"`
}

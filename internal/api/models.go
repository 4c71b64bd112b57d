package api

// Clientes
type CreateClienteRequest struct {
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

// Vehiculos
type CreateVehiculoRequest struct {
	Marca     string  `json:"marca"`
	Modelo    string  `json:"modelo"`
	Placa     string  `json:"placa"`
	PrecioDia float64 `json:"precio_dia"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

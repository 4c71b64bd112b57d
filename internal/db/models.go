package db

import "time"

type Cliente struct {
	ID       int    `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
}

type Vehiculo struct {
	ID        int     `json:"id"`
	Marca     string  `json:"marca"`
	Modelo    string  `json:"modelo"`
	Placa     string  `json:"placa"`
	PrecioDia float64 `json:"precio_dia"`
}

type Factura struct {
	ID         string
	Fecha      time.Time
	ClienteID  int
	VehiculoID int
	Dias       int
	PrecioDia  float64
	Total      float64
}

type Renta struct {
	ID          int
	VehiculoID  int
	FechaInicio time.Time
	FechaFin    time.Time
	FacturaID   string // empty when the renta has no linked factura
	Status      string
	CreatedAt   time.Time
}

package entities

// FacturaRequest es el payload de POST /facturas. Acepta referencias directas
// (cliente_id / vehiculo_id) o campos desnormalizados, que se resuelven a
// referencias antes de insertar.
type FacturaRequest struct {
	ID              string   `json:"id"`
	Fecha           string   `json:"fecha"`
	ClienteID       *int     `json:"cliente_id,omitempty"`
	ClienteNombre   string   `json:"cliente_nombre,omitempty"`
	ClienteTelefono string   `json:"cliente_telefono,omitempty"`
	VehiculoID      *int     `json:"vehiculo_id,omitempty"`
	Vehiculo        string   `json:"vehiculo,omitempty"`
	Placa           string   `json:"placa,omitempty"`
	Dias            *int     `json:"dias,omitempty"`
	PrecioDia       *float64 `json:"precio_dia,omitempty"`
	Total           *float64 `json:"total,omitempty"`
}

// FacturaResponse es la vista desnormalizada de una factura con los datos de
// cliente y vehiculo incluidos.
type FacturaResponse struct {
	ID              string  `json:"id"`
	Fecha           string  `json:"fecha"`
	ClienteNombre   string  `json:"cliente_nombre"`
	ClienteTelefono string  `json:"cliente_telefono"`
	Vehiculo        string  `json:"vehiculo"`
	Placa           string  `json:"placa"`
	Dias            int     `json:"dias"`
	PrecioDia       float64 `json:"precio_dia"`
	Total           float64 `json:"total"`
}

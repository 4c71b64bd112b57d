package entities

type DisponibilidadResponse struct {
	Disponible bool `json:"disponible"`
}

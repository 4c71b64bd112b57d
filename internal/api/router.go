package api

import (
	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. Kept separate from main so tests can serve
// the real routing table.
func NewRouter(sys *SystemHandler, clientes *ClienteHandler, vehiculos *VehiculoHandler,
	facturas *FacturaHandler, rentas *RentaHandler) *mux.Router {

	r := mux.NewRouter()

	r.HandleFunc("/", sys.Root).Methods("GET")
	r.HandleFunc("/test-db", sys.TestDB).Methods("GET")
	r.HandleFunc("/setup-db", sys.SetupDB).Methods("GET", "POST")
	r.HandleFunc("/setup-rentas", sys.SetupRentas).Methods("GET")

	r.HandleFunc("/clientes", clientes.CreateCliente).Methods("POST")
	r.HandleFunc("/clientes", clientes.ListClientes).Methods("GET")

	r.HandleFunc("/vehiculos", vehiculos.CreateVehiculo).Methods("POST")
	r.HandleFunc("/vehiculos", vehiculos.ListVehiculos).Methods("GET")

	r.HandleFunc("/facturas", facturas.CreateFactura).Methods("POST")
	r.HandleFunc("/facturas", facturas.ListFacturas).Methods("GET")

	r.HandleFunc("/disponibilidad/{vehiculo_id}", rentas.CheckDisponibilidad).Methods("GET")
	r.HandleFunc("/rentas", rentas.CreateRenta).Methods("POST")
	r.HandleFunc("/rentas", rentas.ListRentas).Methods("GET")

	return r
}

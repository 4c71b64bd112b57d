package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"arcyrent/internal/api"
	"arcyrent/internal/repository"
	"arcyrent/internal/service"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	schemaRepo := repository.NewSchemaRepository(db)
	clienteSvc := service.NewClienteService(repository.NewClienteRepository(db))
	vehiculoSvc := service.NewVehiculoService(repository.NewVehiculoRepository(db))
	facturaRepo := repository.NewFacturaRepository(db)
	facturaSvc := service.NewFacturaService(facturaRepo)
	rentaSvc := service.NewRentaService(repository.NewRentaRepository(db), facturaRepo)
	jobSvc := service.NewJobService(repository.NewJobRepository(db))

	r := api.NewRouter(
		api.NewSystemHandler(schemaRepo),
		api.NewClienteHandler(clienteSvc),
		api.NewVehiculoHandler(vehiculoSvc),
		api.NewFacturaHandler(facturaSvc),
		api.NewRentaHandler(rentaSvc),
	)

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.UpdateFinishedRentas(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cron job: %v", err)
	}
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}

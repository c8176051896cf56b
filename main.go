package main

import (
	"log"
	"net/http"

	"github.com/quantrisk/portfolio-stress/apiserver"
)

func main() {
	cfg := apiserver.LoadConfig()

	server := apiserver.NewServer(cfg.StepsPerYear, log.Default())
	mux := http.NewServeMux()
	server.Routes(mux)

	log.Printf("Starting HTTP server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

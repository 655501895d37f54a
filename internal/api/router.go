package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tour-route-service/internal/api/handlers"
	"tour-route-service/internal/ports"
	"tour-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.StopRepository, distances *services.DistanceService, defaultGapDays int) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:           repo,
		Distances:      distances,
		DefaultGapDays: defaultGapDays,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", stopHandler.List)
	mux.HandleFunc("/itinerary", itineraryHandler.Build)
	mux.Handle("/metrics", promhttp.Handler())

	return loggingMiddleware(mux)
}

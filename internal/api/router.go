package api

import (
	"net/http"

	"trailer-routing-service/internal/api/handlers"
	"trailer-routing-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	intersects ports.ZonePredicate,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder:   geocoder,
		Directions: directions,
		Intersects: intersects,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/zones", handlers.Zones)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}

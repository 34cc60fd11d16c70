package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"dayplan-service/internal/api/handlers"
	"dayplan-service/internal/ports"
	"dayplan-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// The plan cache is optional; pass nil to always recompute.
func NewRouter(repo ports.POIRepository, engine *services.Engine, planCache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	poiHandler := &handlers.POIHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:     repo,
		Engine:   engine,
		Cache:    planCache,
		Validate: validator.New(),
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/pois", poiHandler.List)
	mux.HandleFunc("/plans", planHandler.Generate)

	return requestIDMiddleware(loggingMiddleware(mux))
}

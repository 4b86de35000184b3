package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tour-planner-service/internal/api/handlers"
	"tour-planner-service/internal/ports"
)

// RouterDeps carries the adapters and defaults the handlers need.
// Cache may be nil.
type RouterDeps struct {
	Cities            ports.CityRepository
	Runs              ports.RunRepository
	Cache             ports.ResultCache
	DefaultIterations int
	DefaultNeighbors  int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	solveHandler := &handlers.SolveHandler{
		Cities:            deps.Cities,
		Runs:              deps.Runs,
		Cache:             deps.Cache,
		DefaultIterations: deps.DefaultIterations,
		DefaultNeighbors:  deps.DefaultNeighbors,
	}
	runHandler := &handlers.RunHandler{Runs: deps.Runs}
	datasetHandler := &handlers.DatasetHandler{Cities: deps.Cities}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/datasets", datasetHandler.List)
	mux.HandleFunc("/solve", solveHandler.Solve)
	mux.HandleFunc("/runs", runHandler.List)
	mux.Handle("/metrics", promhttp.Handler())

	return loggingMiddleware(mux)
}

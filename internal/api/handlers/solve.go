package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
	"tour-planner-service/internal/services"
)

const (
	maxIterations = 100_000
	maxNeighbors  = 100_000
	maxWorkers    = 64
	maxCities     = 10_000
	maxBodyBytes  = 4 << 20
)

type SolveHandler struct {
	Cities            ports.CityRepository
	Runs              ports.RunRepository
	Cache             ports.ResultCache
	DefaultIterations int
	DefaultNeighbors  int
}

// Solve validates a run request, runs the hill climber and returns the best tour.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	dataset := strings.TrimSpace(req.Dataset)
	if dataset == "" && req.Cities == nil {
		writeError(w, r, http.StatusBadRequest, "dataset or cities is required")
		return
	}
	if dataset != "" && req.Cities != nil {
		writeError(w, r, http.StatusBadRequest, "dataset and cities are mutually exclusive")
		return
	}
	if len(req.Cities) > maxCities {
		writeError(w, r, http.StatusBadRequest, "too many cities (max 10000)")
		return
	}

	iterations := req.Iterations
	if iterations == 0 {
		iterations = h.DefaultIterations
	}
	if iterations < 1 || iterations > maxIterations {
		writeError(w, r, http.StatusBadRequest, "iterations must be between 1 and 100000")
		return
	}

	neighbors := req.Neighbors
	if neighbors == 0 {
		neighbors = h.DefaultNeighbors
	}
	if neighbors < 1 || neighbors > maxNeighbors {
		writeError(w, r, http.StatusBadRequest, "neighbors must be between 1 and 100000")
		return
	}

	if req.Workers < 0 || req.Workers > maxWorkers {
		writeError(w, r, http.StatusBadRequest, "workers must be between 0 and 64")
		return
	}

	var cities []domain.City
	if req.Cities != nil {
		cities = make([]domain.City, 0, len(req.Cities))
		for _, c := range req.Cities {
			cities = append(cities, domain.City{X: c.X, Y: c.Y})
		}
	}

	svcReq := services.SolveRequest{
		Dataset:    dataset,
		Cities:     cities,
		Iterations: iterations,
		Neighbors:  neighbors,
		Workers:    req.Workers,
		Seed:       req.Seed,
	}

	res, err := services.Solve(r.Context(), svcReq, h.Cities, h.Runs, h.Cache)
	if errors.Is(err, ports.ErrDatasetNotFound) {
		writeError(w, r, http.StatusNotFound, "dataset not found")
		return
	}
	if err != nil {
		log.Printf("solve failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SolveResponse{
		RunResponse:  toRunResponse(res.Run),
		Cached:       res.Cached,
		Restarts:     res.Restarts,
		Improvements: res.Improvements,
	})
}

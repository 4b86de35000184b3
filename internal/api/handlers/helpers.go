package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toRunResponse(run *domain.Run) dto.RunResponse {
	tour := make([]dto.CityDTO, 0, len(run.Tour))
	for _, c := range run.Tour {
		tour = append(tour, dto.CityDTO{X: c.X, Y: c.Y})
	}

	return dto.RunResponse{
		RunID:      run.RunID,
		Dataset:    run.Dataset,
		Iterations: run.Iterations,
		Neighbors:  run.Neighbors,
		Seed:       run.Seed,
		Distance:   run.Distance,
		Tour:       tour,
		CreatedAt:  run.CreatedAt,
	}
}

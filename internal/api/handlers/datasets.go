package handlers

import (
	"log"
	"net/http"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/ports"
)

type DatasetHandler struct {
	Cities ports.CityRepository
}

func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names, err := h.Cities.ListDatasets(r.Context())
	if err != nil {
		log.Printf("list datasets failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListDatasetsResponse{Datasets: names})
}

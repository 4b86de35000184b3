package handlers

import (
	"log"
	"net/http"
	"strings"

	"tour-planner-service/internal/api/dto"
	"tour-planner-service/internal/ports"
)

// RunHandler exposes read-only access to persisted runs.
type RunHandler struct {
	Runs ports.RunRepository
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dataset := strings.TrimSpace(r.URL.Query().Get("dataset"))
	runs, err := h.Runs.ListRuns(r.Context(), dataset)
	if err != nil {
		log.Printf("list runs failed: dataset=%s err=%v", dataset, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRunsResponse{Runs: make([]dto.RunResponse, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, toRunResponse(run))
	}

	writeJSON(w, r, http.StatusOK, res)
}

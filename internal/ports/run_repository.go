package ports

import (
	"context"
	"tour-planner-service/internal/domain"
)

// Port: persistence for finished optimisation runs.
type RunRepository interface {
	// Store a run and return its assigned identifier.
	SaveRun(ctx context.Context, run *domain.Run) (int64, error)
	// Return runs of a dataset, newest first.
	ListRuns(ctx context.Context, dataset string) ([]*domain.Run, error)
}

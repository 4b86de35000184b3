package ports

import (
	"context"
	"errors"
	"tour-planner-service/internal/domain"
)

var ErrCacheMiss = errors.New("result cache: miss")

// Optional cache of deterministic run results keyed by an opaque string.
type ResultCache interface {
	// Return ErrCacheMiss when the key is unknown.
	Get(ctx context.Context, key string) (*domain.Run, error)
	Put(ctx context.Context, key string, run *domain.Run) error
}

package ports

import (
	"context"
	"errors"
	"tour-planner-service/internal/domain"
)

var ErrDatasetNotFound = errors.New("dataset not found")

// Port: a boundary for retrieving named city datasets from a data source.
type CityRepository interface {
	// Return the cities of a dataset in stored order.
	// Unknown datasets return ErrDatasetNotFound.
	ListCities(ctx context.Context, dataset string) ([]domain.City, error)
	// Return the names of all stored datasets.
	ListDatasets(ctx context.Context) ([]string, error)
}

package repositories

import (
	"context"
	"database/sql"

	"tour-planner-service/internal/domain"
)

// Postgres-backed implementation of the CityRepository port.
type SQLCityRepository struct{ DB *sql.DB }

func NewSQLCityRepository(db *sql.DB) *SQLCityRepository {
	return &SQLCityRepository{DB: db}
}

func (s *SQLCityRepository) ListCities(ctx context.Context, dataset string) ([]domain.City, error) {
	return listCities(ctx, s.DB, dataset, `
	SELECT x, y
	FROM cities
	WHERE dataset = $1
	ORDER BY position;
	`)
}

func (s *SQLCityRepository) ListDatasets(ctx context.Context) ([]string, error) {
	return listDatasets(ctx, s.DB)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

// SQLite-backed implementation of the CityRepository port.
type SqliteCityRepository struct{ DB *sql.DB }

func NewSqliteCityRepository(db *sql.DB) *SqliteCityRepository {
	return &SqliteCityRepository{DB: db}
}

// Return the cities of a dataset ordered by position.
func (s *SqliteCityRepository) ListCities(ctx context.Context, dataset string) ([]domain.City, error) {
	return listCities(ctx, s.DB, dataset, `
	SELECT
		x,
		y
	FROM cities
	WHERE dataset = ?
	ORDER BY position;
	`)
}

// Return all dataset names in lexical order.
func (s *SqliteCityRepository) ListDatasets(ctx context.Context) ([]string, error) {
	return listDatasets(ctx, s.DB)
}

func listCities(ctx context.Context, db *sql.DB, dataset string, query string) (_ []domain.City, err error) {
	defer obs.Time(ctx, "cities.ListCities")(&err)

	if db == nil {
		return nil, errors.New("city repository: DB is nil")
	}

	rows, err := db.QueryContext(ctx, query, dataset)
	if err != nil {
		return nil, fmt.Errorf("list cities: query cities table: %w", err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0, 64)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.X, &c.Y); err != nil {
			return nil, fmt.Errorf("list cities: scan row: %w", err)
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cities: row iteration: %w", err)
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("list cities: %q: %w", dataset, ports.ErrDatasetNotFound)
	}

	return cities, nil
}

func listDatasets(ctx context.Context, db *sql.DB) ([]string, error) {
	if db == nil {
		return nil, errors.New("city repository: DB is nil")
	}

	rows, err := db.QueryContext(ctx, `
	SELECT DISTINCT dataset
	FROM cities
	ORDER BY dataset;
	`)
	if err != nil {
		return nil, fmt.Errorf("list datasets: query cities table: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list datasets: scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list datasets: row iteration: %w", err)
	}

	return names, nil
}

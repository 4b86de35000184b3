package repositories

import (
	"context"
	"database/sql"
	"errors"

	"tour-planner-service/internal/domain"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	return execSchema(db, []string{
		`
	CREATE TABLE IF NOT EXISTS cities (
		dataset TEXT NOT NULL,
		position INTEGER NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (dataset, position)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS runs (
		run_id BIGSERIAL PRIMARY KEY,
		dataset TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		neighbors INTEGER NOT NULL,
		seed BIGINT NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		tour JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_runs_dataset_created
	ON runs(dataset, created_at);
	`,
	})
}

// Replace the cities of a dataset in Postgres, keeping slice order as position.
func SeedPostgresCities(ctx context.Context, db *sql.DB, dataset string, cities []domain.City) error {
	return seedCities(ctx, db, dataset, cities,
		`DELETE FROM cities WHERE dataset = $1;`,
		`INSERT INTO cities (dataset, position, x, y) VALUES ($1, $2, $3, $4);`,
	)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		dataset TEXT NOT NULL,
		position INTEGER NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		PRIMARY KEY (dataset, position)
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id INTEGER PRIMARY KEY AUTOINCREMENT,
		dataset TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		neighbors INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		distance REAL NOT NULL,
		tour TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_runs_dataset_created
	ON runs(dataset, created_at);
	`

	return execSchema(db, []string{createCitiesQuery, createRunsQuery, createIndexQuery})
}

func execSchema(db *sql.DB, statements []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the cities of a dataset in SQLite, keeping slice order as position.
func SeedCities(ctx context.Context, db *sql.DB, dataset string, cities []domain.City) error {
	return seedCities(ctx, db, dataset, cities,
		`DELETE FROM cities WHERE dataset = ?;`,
		`INSERT INTO cities (dataset, position, x, y) VALUES (?, ?, ?, ?);`,
	)
}

func seedCities(
	ctx context.Context,
	db *sql.DB,
	dataset string,
	cities []domain.City,
	deleteQuery string,
	insertQuery string,
) error {
	if db == nil {
		return errors.New("seed cities: DB is nil")
	}
	if dataset == "" {
		return errors.New("seed cities: dataset must be non-empty")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed cities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteQuery, dataset); err != nil {
		return fmt.Errorf("seed cities: clear dataset %q: %w", dataset, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("seed cities: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range cities {
		if _, err := stmt.ExecContext(ctx, dataset, i, c.X, c.Y); err != nil {
			return fmt.Errorf("seed cities: insert dataset=%q position=%d: %w", dataset, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cities: commit tx: %w", err)
	}

	return nil
}

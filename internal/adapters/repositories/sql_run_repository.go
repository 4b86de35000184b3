package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// Postgres-backed implementation of the RunRepository port.
type SQLRunRepository struct{ DB *sql.DB }

func NewSQLRunRepository(db *sql.DB) *SQLRunRepository {
	return &SQLRunRepository{DB: db}
}

func (s *SQLRunRepository) SaveRun(ctx context.Context, run *domain.Run) (_ int64, err error) {
	defer obs.Time(ctx, "runs.SaveRun")(&err)

	if s.DB == nil {
		return 0, errors.New("run repository: db is nil")
	}
	if run == nil {
		return 0, errors.New("save run: run must be non-nil")
	}

	tour, err := encodeTour(run.Tour)
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}

	var id int64
	err = s.DB.QueryRowContext(ctx, `
	INSERT INTO runs (dataset, iterations, neighbors, seed, distance, tour, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING run_id;
	`,
		run.Dataset, run.Iterations, run.Neighbors, run.Seed, run.Distance, tour, run.CreatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save run: insert dataset=%q: %w", run.Dataset, err)
	}

	return id, nil
}

func (s *SQLRunRepository) ListRuns(ctx context.Context, dataset string) (_ []*domain.Run, err error) {
	defer obs.Time(ctx, "runs.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("run repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT run_id, dataset, iterations, neighbors, seed, distance, tour::text, created_at
	FROM runs
	WHERE $1 = '' OR dataset = $1
	ORDER BY created_at DESC, run_id DESC;
	`, dataset)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0, 16)
	for rows.Next() {
		var (
			r    domain.Run
			tour string
		)
		if err := rows.Scan(&r.RunID, &r.Dataset, &r.Iterations, &r.Neighbors, &r.Seed, &r.Distance, &tour, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("list runs: scan rows: %w", err)
		}
		if r.Tour, err = decodeTour(tour); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: %w", r.RunID, err)
		}
		runs = append(runs, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}

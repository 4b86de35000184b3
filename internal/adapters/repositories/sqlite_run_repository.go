package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// Fixed-width UTC layout so created_at sorts lexically.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLite-backed implementation of the RunRepository port.
type SqliteRunRepository struct{ DB *sql.DB }

func NewSqliteRunRepository(db *sql.DB) *SqliteRunRepository {
	return &SqliteRunRepository{DB: db}
}

// Store a finished run and return its row id.
func (s *SqliteRunRepository) SaveRun(ctx context.Context, run *domain.Run) (_ int64, err error) {
	defer obs.Time(ctx, "runs.SaveRun")(&err)

	if s.DB == nil {
		return 0, errors.New("sqlite run repository: DB is nil")
	}
	if run == nil {
		return 0, errors.New("save run: run must be non-nil")
	}

	tour, err := encodeTour(run.Tour)
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, `
	INSERT INTO runs (
		dataset,
		iterations,
		neighbors,
		seed,
		distance,
		tour,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`,
		run.Dataset, run.Iterations, run.Neighbors, run.Seed, run.Distance, tour,
		run.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("save run: insert dataset=%q: %w", run.Dataset, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save run: last insert id: %w", err)
	}

	return id, nil
}

// Return runs of a dataset, newest first. An empty dataset lists every run.
func (s *SqliteRunRepository) ListRuns(ctx context.Context, dataset string) (_ []*domain.Run, err error) {
	defer obs.Time(ctx, "runs.ListRuns")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite run repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		run_id,
		dataset,
		iterations,
		neighbors,
		seed,
		distance,
		tour,
		created_at
	FROM runs
	WHERE ? = '' OR dataset = ?
	ORDER BY created_at DESC, run_id DESC;
	`, dataset, dataset)
	if err != nil {
		return nil, fmt.Errorf("list runs: query runs table: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0, 16)
	for rows.Next() {
		var (
			r         domain.Run
			tour      string
			createdAt string
		)
		if err := rows.Scan(&r.RunID, &r.Dataset, &r.Iterations, &r.Neighbors, &r.Seed, &r.Distance, &tour, &createdAt); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}

		if r.Tour, err = decodeTour(tour); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: %w", r.RunID, err)
		}
		if r.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("list runs: run_id=%d: parse created_at: %w", r.RunID, err)
		}
		runs = append(runs, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	return runs, nil
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

// RunRepository handles database operations for pipeline runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Start records a new running pipeline execution and returns its id.
func (r *RunRepository) Start(sourcePath string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO pipeline_runs (status, source_path)
		VALUES ('running', ?)
	`, sourcePath)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// Finish marks a run as completed or failed.
func (r *RunRepository) Finish(id int64, status string, recordCount, degraded int, errMsg string) error {
	_, err := r.db.Exec(`
		UPDATE pipeline_runs
		SET status = ?,
		    record_count = ?,
		    degraded_aggregates = ?,
		    error_message = ?,
		    completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, status, recordCount, degraded, errMsg, id)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(limit int) ([]models.PipelineRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, status, source_path, record_count, degraded_aggregates,
		       error_message, started_at, completed_at
		FROM pipeline_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.PipelineRun
	for rows.Next() {
		var run models.PipelineRun
		var errMsg, completedAt sql.NullString
		if err := rows.Scan(&run.ID, &run.Status, &run.SourcePath, &run.RecordCount,
			&run.Degraded, &errMsg, &run.StartedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Error = errMsg.String
		run.CompletedAt = completedAt.String
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

package models

// PipelineRun records one full pipeline execution.
type PipelineRun struct {
	ID          int64  `json:"id" db:"id"`
	Status      string `json:"status" db:"status"` // running, completed, failed
	SourcePath  string `json:"source_path" db:"source_path"`
	RecordCount int    `json:"record_count" db:"record_count"`
	Degraded    int    `json:"degraded_aggregates" db:"degraded_aggregates"`
	StartedAt   string `json:"started_at" db:"started_at"`
	CompletedAt string `json:"completed_at,omitempty" db:"completed_at"`
	Error       string `json:"error,omitempty" db:"error_message"`
}

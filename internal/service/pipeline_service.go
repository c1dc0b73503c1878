package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/pipeline"
	"github.com/dsci550/haunted-places-backend-go/internal/repository"
)

// ErrRunInProgress is returned when a run is triggered while another
// one is still executing.
var ErrRunInProgress = errors.New("a pipeline run is already in progress")

// PipelineService triggers aggregation runs and exposes run history.
// Only one run may execute at a time: concurrent triggers would race
// on the output directory.
type PipelineService struct {
	pipe    *pipeline.Pipeline
	tsvPath string
	runs    *repository.RunRepository

	mu      sync.Mutex
	running bool
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(pipe *pipeline.Pipeline, tsvPath string, runs *repository.RunRepository) *PipelineService {
	return &PipelineService{pipe: pipe, tsvPath: tsvPath, runs: runs}
}

// Run executes a full pipeline run synchronously. A second trigger
// while one is in flight is rejected rather than queued.
func (s *PipelineService) Run() (*pipeline.Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	result, err := s.pipe.Run(s.tsvPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline run failed: %w", err)
	}
	return result, nil
}

// History returns recent runs, newest first.
func (s *PipelineService) History(limit int) ([]models.PipelineRun, error) {
	if s.runs == nil {
		return []models.PipelineRun{}, nil
	}
	return s.runs.List(limit)
}

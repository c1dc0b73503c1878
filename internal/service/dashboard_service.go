package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dsci550/haunted-places-backend-go/internal/aggregate"
)

// DashboardService serves the latest aggregate documents to the
// dashboard. Documents are read from the output directory on demand so
// the API always reflects the most recently published run.
type DashboardService struct {
	outputDir string
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(outputDir string) *DashboardService {
	return &DashboardService{outputDir: outputDir}
}

// Document returns the aggregate document with the given name as raw
// JSON. The name must match a registered aggregate.
func (s *DashboardService) Document(name string) (json.RawMessage, error) {
	agg := aggregate.Get(name)
	if agg == nil {
		return nil, fmt.Errorf("unknown aggregate: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(s.outputDir, agg.Filename()))
	if err != nil {
		return nil, fmt.Errorf("aggregate %s not generated yet: %w", name, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("aggregate %s is corrupt", name)
	}
	return json.RawMessage(data), nil
}

// Names lists the available aggregate names in pipeline order.
func (s *DashboardService) Names() []string {
	aggs := aggregate.All()
	names := make([]string, 0, len(aggs))
	for _, a := range aggs {
		names = append(names, a.Name())
	}
	return names
}

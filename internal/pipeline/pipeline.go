// Package pipeline orchestrates a full aggregation run: load the TSV,
// compute every registered aggregate, stage the JSON documents and
// swap them into the output directory only once all of them exist.
// A failed aggregate degrades to its empty document instead of
// blocking the rest; a failed load aborts the run, since nothing
// downstream is possible without a frame.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dsci550/haunted-places-backend-go/internal/aggregate"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/repository"
)

// Pipeline runs the aggregation end to end. Places and Runs are
// optional: without them the pipeline only writes JSON files.
type Pipeline struct {
	OutputDir string
	Places    *repository.PlaceRepository
	Runs      *repository.RunRepository
}

// Result summarizes one run.
type Result struct {
	RecordCount int
	// Degraded lists aggregates that failed and were substituted with
	// their empty documents.
	Degraded  []string
	Documents map[string]any
}

// Run executes the full pipeline for one input file.
func (p *Pipeline) Run(tsvPath string) (*Result, error) {
	runID := p.startRun(tsvPath)

	frame, err := dataset.Load(tsvPath)
	if err != nil {
		p.finishRun(runID, "failed", 0, 0, err.Error())
		return nil, err
	}

	result := &Result{
		RecordCount: frame.Len(),
		Documents:   make(map[string]any),
	}

	for _, agg := range aggregate.All() {
		doc, err := compute(agg, frame)
		if err != nil {
			log.Printf("Error preparing %s data: %v", agg.Name(), err)
			doc = agg.Empty()
			result.Degraded = append(result.Degraded, agg.Name())
		}
		result.Documents[agg.Filename()] = doc
	}

	if err := p.write(result.Documents); err != nil {
		p.finishRun(runID, "failed", frame.Len(), len(result.Degraded), err.Error())
		return nil, err
	}

	p.ingest(frame)
	p.finishRun(runID, "completed", frame.Len(), len(result.Degraded), "")

	log.Println("All data processing complete")
	return result, nil
}

// compute isolates a single aggregate, converting panics to errors so
// one bad derivation cannot take down the run.
func compute(agg aggregate.Aggregator, f *dataset.Frame) (doc any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s aggregate: %v", agg.Name(), r)
		}
	}()
	return agg.Compute(f)
}

// write stages every document as a temp file and renames them into
// place only after all of them marshaled and wrote cleanly, so a
// partial failure never leaves the output directory with
// mixed-vintage files.
func (p *Pipeline) write(documents map[string]any) error {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	staged := make(map[string]string, len(documents))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for filename, doc := range documents {
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to marshal %s: %w", filename, err)
		}

		tmp, err := os.CreateTemp(p.OutputDir, "."+filename+".tmp-")
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to stage %s: %w", filename, err)
		}
		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			cleanup()
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return fmt.Errorf("failed to close %s: %w", filename, err)
		}
		staged[filename] = tmp.Name()
	}

	for filename, tmp := range staged {
		if err := os.Rename(tmp, filepath.Join(p.OutputDir, filename)); err != nil {
			cleanup()
			return fmt.Errorf("failed to publish %s: %w", filename, err)
		}
	}
	return nil
}

// ingest persists the surviving records. Best-effort: a storage
// failure is a warning, never a pipeline failure.
func (p *Pipeline) ingest(f *dataset.Frame) {
	if p.Places == nil {
		return
	}

	places := make([]models.Place, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		lat, _ := f.Float(i, "latitude")
		lon, _ := f.Float(i, "longitude")
		places = append(places, models.Place{
			Location:    f.Value(i, "location"),
			State:       f.Value(i, "state"),
			Country:     f.Value(i, "country"),
			Latitude:    lat,
			Longitude:   lon,
			Description: f.Value(i, "description"),
			Date:        f.Value(i, "date"),
			Evidence:    f.Value(i, "evidence"),
		})
	}

	if err := p.Places.ReplaceAll(places); err != nil {
		log.Printf("Warning: failed to persist records: %v", err)
		return
	}
	log.Printf("Persisted %d records", len(places))
}

func (p *Pipeline) startRun(tsvPath string) int64 {
	if p.Runs == nil {
		return 0
	}
	id, err := p.Runs.Start(tsvPath)
	if err != nil {
		log.Printf("Warning: failed to record run start: %v", err)
		return 0
	}
	return id
}

func (p *Pipeline) finishRun(id int64, status string, records, degraded int, errMsg string) {
	if p.Runs == nil || id == 0 {
		return
	}
	if err := p.Runs.Finish(id, status, records, degraded, errMsg); err != nil {
		log.Printf("Warning: failed to record run finish: %v", err)
	}
}

// Package aggregate derives the six analysis documents from a loaded
// frame. Each aggregate is independent: it reads the frame, derives
// any working columns locally, and returns one JSON-serializable
// document. A failure in one aggregate never blocks the others.
package aggregate

import (
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
)

// Aggregator derives one analysis document from the loaded frame.
type Aggregator interface {
	// Name identifies the aggregate in logs and API routes.
	Name() string

	// Filename is the JSON file the document is written to.
	Filename() string

	// Compute derives the document. On error the pipeline substitutes
	// Empty() and continues with the remaining aggregates.
	Compute(f *dataset.Frame) (any, error)

	// Empty returns the degenerate document of the expected shape.
	Empty() any
}

// registry keeps aggregates in registration order so every run
// produces its outputs in the same sequence.
var registry []Aggregator

// Register adds an aggregator to the pipeline. Called from init in
// each aggregate file.
func Register(a Aggregator) {
	registry = append(registry, a)
}

// All returns every registered aggregator in registration order.
func All() []Aggregator {
	return registry
}

// Get returns the aggregator with the given name, or nil.
func Get(name string) Aggregator {
	for _, a := range registry {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

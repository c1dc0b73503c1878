// Command pipeline runs the full aggregation once and exits: load the
// TSV, compute every aggregate, publish the JSON documents, and
// optionally persist records and run history to SQLite.
package main

import (
	"flag"
	"log"

	"github.com/dsci550/haunted-places-backend-go/internal/database"
	"github.com/dsci550/haunted-places-backend-go/internal/pipeline"
	"github.com/dsci550/haunted-places-backend-go/internal/repository"
)

func main() {
	tsvPath := flag.String("input", "data/haunted_places_v2.tsv", "path to the tab-separated dataset")
	outputDir := flag.String("output", "output", "directory for the aggregate JSON files")
	dbPath := flag.String("db", "", "optional SQLite path for record persistence and run history")
	flag.Parse()

	pipe := &pipeline.Pipeline{OutputDir: *outputDir}

	if *dbPath != "" {
		if err := database.Init(database.Config{Path: *dbPath}); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer database.Close()

		db := database.GetDB()
		pipe.Places = repository.NewPlaceRepository(db)
		pipe.Runs = repository.NewRunRepository(db)
	}

	result, err := pipe.Run(*tsvPath)
	if err != nil {
		log.Fatal("Pipeline failed:", err)
	}

	log.Printf("Processed %d records into %d aggregates (%d degraded)",
		result.RecordCount, len(result.Documents), len(result.Degraded))
}

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/golang/geo/s2"
)

// RequiredColumns is the fixed column set every loaded frame carries.
// Columns absent from the source are created filled with the missing
// marker rather than failing the load.
var RequiredColumns = []string{
	"latitude", "longitude", "location", "state", "country", "description", "date",
}

// optionalDefaults are injected when the source lacks the column, so
// every aggregate can assume they exist.
var optionalDefaults = map[string]string{
	"evidence":        "Unknown",
	"time":            "Unknown",
	"apparition_type": "Unknown",
	"daylight_hours":  "12",
}

// Load reads a tab-separated file into a repaired frame. Rows without
// a coercible, valid latitude/longitude are dropped: geocoding
// validity is a hard precondition for every downstream aggregate.
// Anything short of an unreadable file or empty header is repaired
// rather than raised.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	log.Printf("Loading data from %s", path)
	return Read(f)
}

// Read parses tab-separated content from r. Malformed lines (more
// fields than the header) are skipped; short lines are padded with the
// missing marker.
func Read(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	skipped := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(record) > len(header) {
			skipped++
			continue
		}
		rows = append(rows, record)
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed lines", skipped)
	}

	frame := New(header, rows)
	repair(frame)
	return frame, nil
}

// repair enforces the loader contract: required columns exist, rows
// without usable coordinates are gone, optional columns carry their
// defaults.
func repair(f *Frame) {
	for _, col := range RequiredColumns {
		if !f.Has(col) {
			log.Printf("Column %q not found in data, creating empty column", col)
			f.addColumn(col, Missing)
		}
	}

	before := f.Len()
	f.filter(func(row int) bool {
		lat, okLat := f.Float(row, "latitude")
		lon, okLon := f.Float(row, "longitude")
		if !okLat || !okLon {
			return false
		}
		return s2.LatLngFromDegrees(lat, lon).IsValid()
	})
	if dropped := before - f.Len(); dropped > 0 {
		log.Printf("Dropped %d rows with missing or invalid lat/long", dropped)
	}

	for col, def := range optionalDefaults {
		f.addColumn(col, def)
	}

	log.Printf("Successfully loaded %d records", f.Len())
}

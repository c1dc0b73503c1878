package aggregate

import (
	"log"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

func init() {
	Register(&MapData{})
}

// MapData emits one flat record per surviving row for the map view.
// The evidence label joins every matching category; the evidence
// aggregate counts first-match only.
type MapData struct{}

func (*MapData) Name() string     { return "map" }
func (*MapData) Filename() string { return "map_data.json" }

func (*MapData) Empty() any {
	return models.MapDocument{MapData: []models.MapRecord{}}
}

func (m *MapData) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing map data")

	records := make([]models.MapRecord, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		lat, _ := f.Float(i, "latitude")
		lon, _ := f.Float(i, "longitude")

		records = append(records, models.MapRecord{
			Location:    f.Value(i, "location"),
			State:       f.Value(i, "state"),
			Country:     f.Value(i, "country"),
			Latitude:    lat,
			Longitude:   lon,
			Description: f.Value(i, "description"),
			Date:        f.Value(i, "evidence_date"),
			Evidence:    classify.EvidenceAll(f.Value(i, "description")),
		})
	}

	return models.MapDocument{MapData: records}, nil
}

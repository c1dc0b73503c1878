package aggregate

import (
	"log"
	"math"
	"strings"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

// airQualityColumn and visualEvidenceColumn are the source columns the
// cross-tab requires; without them the document degrades with an
// explanatory metadata error.
const (
	airQualityColumn     = "CO_ppb_Description"
	visualEvidenceColumn = "visual_evidence"
)

// AirQualityCategories is the fixed category set of the cross-tab.
var AirQualityCategories = []string{
	"Good Air Quality",
	"Moderate Air Pollution",
	"Poor Air Quality",
}

func init() {
	Register(&AirQuality{})
}

// AirQuality cross-tabulates air-quality categories against the
// visual-evidence flag over the subset of records with a non-empty
// category and a known apparition type. All percentages are relative
// to that filtered subset, not the full dataset.
type AirQuality struct{}

func (*AirQuality) Name() string     { return "air-quality" }
func (*AirQuality) Filename() string { return "air_pollution.json" }

func (*AirQuality) Empty() any {
	return models.AirQualityDocument{
		Categories: map[string]models.AirQualityCategory{},
	}
}

func (a *AirQuality) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing air pollution analysis data")

	if !f.Has(airQualityColumn) || !f.Has(visualEvidenceColumn) {
		return models.AirQualityDocument{
			Categories: map[string]models.AirQualityCategory{},
			Metadata:   models.AirQualityMetadata{Error: "missing air quality or visual evidence column"},
		}, nil
	}

	// Filtered subset: categorized air quality and a known apparition.
	var rows []int
	for i := 0; i < f.Len(); i++ {
		co := f.Value(i, airQualityColumn)
		app := f.Value(i, "apparition_type")
		if co != dataset.Missing && app != dataset.Missing && app != classify.Unknown {
			rows = append(rows, i)
		}
	}
	total := len(rows)
	log.Printf("Analyzing %d rows with air quality data", total)

	categories := make(map[string]models.AirQualityCategory, len(AirQualityCategories))
	for _, category := range AirQualityCategories {
		var trueCount, falseCount int
		for _, i := range rows {
			if f.Value(i, airQualityColumn) != category {
				continue
			}
			if strings.EqualFold(f.Value(i, visualEvidenceColumn), "true") {
				trueCount++
			} else {
				falseCount++
			}
		}

		count := trueCount + falseCount
		entry := models.AirQualityCategory{
			TotalCount: count,
			Breakdown: map[string]models.AirQualitySplit{
				"TRUE":  {},
				"FALSE": {},
			},
		}
		if count > 0 {
			entry.TotalPercentage = round2(float64(count) / float64(total) * 100)
			entry.Breakdown["TRUE"] = models.AirQualitySplit{
				Count:      trueCount,
				Percentage: round2(float64(trueCount) / float64(count) * 100),
			}
			entry.Breakdown["FALSE"] = models.AirQualitySplit{
				Count:      falseCount,
				Percentage: round2(float64(falseCount) / float64(count) * 100),
			}
		}
		categories[category] = entry
	}

	return models.AirQualityDocument{
		Categories: categories,
		Metadata:   models.AirQualityMetadata{TotalRowsAnalyzed: total},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

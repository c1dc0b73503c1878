package aggregate

import (
	"log"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/stats"
)

func init() {
	Register(&EvidenceAnalysis{})
}

// EvidenceAnalysis counts evidence categories and apparition types.
// When the evidence column carries no information the categories are
// derived from descriptions with first-match-wins, so every record
// lands in exactly one bucket and the counts sum to the record count.
type EvidenceAnalysis struct{}

func (*EvidenceAnalysis) Name() string     { return "evidence" }
func (*EvidenceAnalysis) Filename() string { return "evidence_analysis.json" }

func (*EvidenceAnalysis) Empty() any {
	return models.EvidenceDocument{
		EvidenceCounts:   map[string]int{classify.Unknown: 0},
		ApparitionCounts: []models.ApparitionCount{},
	}
}

func (e *EvidenceAnalysis) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing evidence analysis data")

	return models.EvidenceDocument{
		EvidenceCounts:   evidenceCounts(f),
		ApparitionCounts: apparitionCounts(f),
	}, nil
}

// evidenceCounts uses the evidence column verbatim when it carries any
// signal, otherwise derives categories from the descriptions.
func evidenceCounts(f *dataset.Frame) map[string]int {
	if uniformlyUnknown(f.Column("evidence")) {
		log.Println("All evidence values are Unknown, extracting from descriptions")
		return deriveEvidenceCounts(f)
	}

	counts := make(map[string]int)
	for _, v := range f.Column("evidence") {
		counts[v]++
	}
	return counts
}

// uniformlyUnknown reports whether a non-empty column contains only
// the Unknown marker.
func uniformlyUnknown(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if v != classify.Unknown {
			return false
		}
	}
	return true
}

// deriveEvidenceCounts assigns each record its first matching category
// in table order. All categories are present in the result even at
// zero, and unmatched records count as Unknown.
func deriveEvidenceCounts(f *dataset.Frame) map[string]int {
	counts := make(map[string]int, len(classify.EvidenceCategories)+1)
	for _, cat := range classify.EvidenceCategories {
		counts[cat.Name] = 0
	}

	for i := 0; i < f.Len(); i++ {
		counts[classify.EvidenceFirst(f.Value(i, "description"))]++
	}
	return counts
}

func apparitionCounts(f *dataset.Frame) []models.ApparitionCount {
	kcs := stats.ValueCounts(f.Column("apparition_type"))
	counts := make([]models.ApparitionCount, 0, len(kcs))
	for _, kc := range kcs {
		counts = append(counts, models.ApparitionCount{ApparitionType: kc.Key, Count: kc.Count})
	}
	return counts
}

package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

func TestEvidenceAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("derives first-match counts when the column is uniformly Unknown", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "description"),
			row("34.0", "-118.0", "a voice and a shadow"), // Sound wins over Visual
			row("35.0", "-118.0", "a shadow figure"),
			row("36.0", "-118.0", "nothing notable"),
			row("37.0", "-118.0", ""),
		)

		result, err := (&EvidenceAnalysis{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.EvidenceDocument)

		assert.Equal(t, 1, doc.EvidenceCounts["Sound"])
		assert.Equal(t, 1, doc.EvidenceCounts["Visual"])
		assert.Equal(t, 2, doc.EvidenceCounts["Unknown"])

		// Every record lands in exactly one bucket.
		total := 0
		for _, c := range doc.EvidenceCounts {
			total += c
		}
		assert.Equal(t, f.Len(), total)

		// All categories are present even at zero.
		for _, cat := range classify.EvidenceCategories {
			_, ok := doc.EvidenceCounts[cat.Name]
			assert.True(t, ok, "category %s missing from counts", cat.Name)
		}
	})

	t.Run("uses the evidence column verbatim when it carries signal", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "evidence", "description"),
			row("34.0", "-118.0", "Visual", "a voice"),
			row("35.0", "-118.0", "Visual", "a voice"),
			row("36.0", "-118.0", "EVP", "a voice"),
		)

		result, err := (&EvidenceAnalysis{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.EvidenceDocument)

		assert.Equal(t, map[string]int{"Visual": 2, "EVP": 1}, doc.EvidenceCounts)
	})

	t.Run("counts apparition types with deterministic ordering", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "apparition_type"),
			row("34.0", "-118.0", "Ghost"),
			row("35.0", "-118.0", "Ghost"),
			row("36.0", "-118.0", "Orb"),
		)

		result, err := (&EvidenceAnalysis{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.EvidenceDocument)

		require.Len(t, doc.ApparitionCounts, 2)
		assert.Equal(t, models.ApparitionCount{ApparitionType: "Ghost", Count: 2}, doc.ApparitionCounts[0])
		assert.Equal(t, models.ApparitionCount{ApparitionType: "Orb", Count: 1}, doc.ApparitionCounts[1])
	})

	t.Run("absent apparition column collapses to one Unknown bucket", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "evidence"),
			row("34.0", "-118.0", "Visual"),
			row("35.0", "-118.0", "Visual"),
		)

		result, err := (&EvidenceAnalysis{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.EvidenceDocument)

		require.Len(t, doc.ApparitionCounts, 1)
		assert.Equal(t, models.ApparitionCount{ApparitionType: "Unknown", Count: 2}, doc.ApparitionCounts[0])
	})

	t.Run("empty frame yields empty counts", func(t *testing.T) {
		t.Parallel()
		f := frame(t, row("latitude", "longitude"))

		result, err := (&EvidenceAnalysis{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.EvidenceDocument)

		assert.Empty(t, doc.EvidenceCounts)
		assert.Empty(t, doc.ApparitionCounts)
	})
}

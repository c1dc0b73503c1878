package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

func TestMapData(t *testing.T) {
	t.Parallel()

	t.Run("emits one record per surviving row", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("location", "state", "country", "description", "date", "latitude", "longitude"),
			row("Old Mill", "california", "United States", "a shadow figure appeared near midnight", "1990-01-01", "34.0", "-118.0"),
			row("Dry Well", "texas", "United States", "a cold chill", "1991-06-01", "31.0", "-97.0"),
		)

		result, err := (&MapData{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.MapDocument)

		require.Len(t, doc.MapData, 2)
		first := doc.MapData[0]
		assert.Equal(t, "Old Mill", first.Location)
		assert.InDelta(t, 34.0, first.Latitude, 1e-9)
		assert.InDelta(t, -118.0, first.Longitude, 1e-9)
		assert.Contains(t, first.Evidence, "Visual")
	})

	t.Run("date comes from evidence_date when present", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "description", "evidence_date"),
			row("34.0", "-118.0", "a whisper", "1988-10-31"),
		)

		result, err := (&MapData{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.MapDocument)

		require.Len(t, doc.MapData, 1)
		assert.Equal(t, "1988-10-31", doc.MapData[0].Date)
	})

	t.Run("unmatched description labels Unknown", func(t *testing.T) {
		t.Parallel()
		f := frame(t,
			row("latitude", "longitude", "description"),
			row("34.0", "-118.0", "nothing notable"),
		)

		result, err := (&MapData{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.MapDocument)
		assert.Equal(t, "Unknown", doc.MapData[0].Evidence)
	})

	t.Run("empty frame yields empty list", func(t *testing.T) {
		t.Parallel()
		f := frame(t, row("latitude", "longitude"))

		result, err := (&MapData{}).Compute(f)
		require.NoError(t, err)
		doc := result.(models.MapDocument)
		assert.NotNil(t, doc.MapData)
		assert.Empty(t, doc.MapData)
	})
}

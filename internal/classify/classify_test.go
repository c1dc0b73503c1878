package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvidenceExtraction(t *testing.T) {
	t.Parallel()

	t.Run("first match stops at the first category in table order", func(t *testing.T) {
		t.Parallel()
		// "voice" hits Sound before "shadow" can hit Visual.
		assert.Equal(t, "Sound", EvidenceFirst("a voice and a shadow in the hall"))
	})

	t.Run("all matches joins categories in table order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Sound, Visual", EvidenceAll("a voice and a shadow in the hall"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Visual", EvidenceFirst("A SHADOW FIGURE"))
	})

	t.Run("no match yields Unknown", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Unknown, EvidenceFirst("nothing of note happened here"))
		assert.Equal(t, Unknown, EvidenceAll("nothing of note happened here"))
	})

	t.Run("empty description yields Unknown", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Unknown, EvidenceFirst(""))
		assert.Equal(t, Unknown, EvidenceAll(""))
	})

	t.Run("shadow figure near midnight is Visual", func(t *testing.T) {
		t.Parallel()
		desc := "a shadow figure appeared near midnight"
		assert.Contains(t, EvidenceAll(desc), "Visual")
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Parallel()

	t.Run("descriptor intensity wins in morning, evening, dusk order", func(t *testing.T) {
		t.Parallel()
		label, ok := TimeOfDayFromDescriptors("high activity", "high activity", "")
		assert.True(t, ok)
		assert.Equal(t, "Morning", label)

		label, ok = TimeOfDayFromDescriptors("low", "high", "high")
		assert.True(t, ok)
		assert.Equal(t, "Evening", label)
	})

	t.Run("falls through when no descriptor is high", func(t *testing.T) {
		t.Parallel()
		_, ok := TimeOfDayFromDescriptors("low", "moderate", "")
		assert.False(t, ok)
	})

	t.Run("description keywords map to the closed category set", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Night", TimeOfDayFromDescription("a shadow figure appeared near midnight"))
		assert.Equal(t, "Morning", TimeOfDayFromDescription("seen at dawn by the lake"))
		assert.Equal(t, "Afternoon", TimeOfDayFromDescription("every noon the door slams"))
		assert.Equal(t, "Dusk", TimeOfDayFromDescription("visible at sunset"))
		assert.Equal(t, Unknown, TimeOfDayFromDescription("no time given"))
	})
}

func TestRegion(t *testing.T) {
	t.Parallel()

	t.Run("covers all 50 states plus DC exactly once", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, stateRegion, 51)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()
		region, ok := Region("California")
		assert.True(t, ok)
		assert.Equal(t, "West", region)

		region, ok = Region("washington dc")
		assert.True(t, ok)
		assert.Equal(t, "South", region)
	})

	t.Run("unmapped states are excluded", func(t *testing.T) {
		t.Parallel()
		_, ok := Region("calefornia")
		assert.False(t, ok)
		_, ok = Region("ontario")
		assert.False(t, ok)
	})
}

func TestDaylight(t *testing.T) {
	t.Parallel()

	t.Run("descriptor buckets test very-high before high", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 14.0, DescriptorHours("Very High daylight"))
		assert.Equal(t, 13.0, DescriptorHours("high"))
		assert.Equal(t, 12.0, DescriptorHours("moderate"))
		assert.Equal(t, 11.0, DescriptorHours("low"))
		assert.Equal(t, 10.0, DescriptorHours("very low"))
		assert.Equal(t, DefaultDaylightHours, DescriptorHours("unintelligible"))
	})

	t.Run("synthetic model is linear in latitude", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 12.0, SyntheticDaylight(40.0), 1e-9)
		assert.InDelta(t, 11.4, SyntheticDaylight(34.0), 1e-9)
		assert.InDelta(t, 12.6, SyntheticDaylight(46.0), 1e-9)
	})
}

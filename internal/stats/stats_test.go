package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanAndVariance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)

	assert.Equal(t, 0.0, Variance([]float64{5}))
	assert.InDelta(t, 1.0, Variance([]float64{1, 2, 3}), 1e-9)
}

func TestPearsonCorrelation(t *testing.T) {
	t.Parallel()

	t.Run("perfect positive correlation", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4}
		y := []float64{2, 4, 6, 8}
		assert.InDelta(t, 1.0, PearsonCorrelation(x, y), 1e-9)
	})

	t.Run("perfect negative correlation", func(t *testing.T) {
		t.Parallel()
		x := []float64{1, 2, 3, 4}
		y := []float64{8, 6, 4, 2}
		assert.InDelta(t, -1.0, PearsonCorrelation(x, y), 1e-9)
	})

	t.Run("zero variance yields 0 not NaN", func(t *testing.T) {
		t.Parallel()
		x := []float64{5, 5, 5, 5}
		y := []float64{1, 2, 3, 4}
		assert.Equal(t, 0.0, PearsonCorrelation(x, y))
	})

	t.Run("short or mismatched input yields 0", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, PearsonCorrelation([]float64{1}, []float64{1}))
		assert.Equal(t, 0.0, PearsonCorrelation([]float64{1, 2}, []float64{1}))
	})
}

func TestPairwiseComplete(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4}
	y := []float64{10, 20, 30, 40}
	okX := []bool{true, false, true, true}
	okY := []bool{true, true, false, true}

	fx, fy := PairwiseComplete(x, y, okX, okY)
	require.Equal(t, []float64{1, 4}, fx)
	require.Equal(t, []float64{10, 40}, fy)
}

func TestValueCounts(t *testing.T) {
	t.Parallel()

	t.Run("sorted by count descending with key tie-break", func(t *testing.T) {
		t.Parallel()
		counts := ValueCounts([]string{"b", "a", "b", "c", "a", "b"})
		require.Len(t, counts, 3)
		assert.Equal(t, KeyCount{"b", 3}, counts[0])
		assert.Equal(t, KeyCount{"a", 2}, counts[1])
		assert.Equal(t, KeyCount{"c", 1}, counts[2])
	})

	t.Run("ties resolve alphabetically", func(t *testing.T) {
		t.Parallel()
		counts := ValueCounts([]string{"z", "a"})
		assert.Equal(t, "a", counts[0].Key)
		assert.Equal(t, "z", counts[1].Key)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ValueCounts(nil))
	})
}

func TestDistinctCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, DistinctCount(nil))
	assert.Equal(t, 2, DistinctCount([]float64{1, 2, 1, 2, 1}))
}

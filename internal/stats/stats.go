// Package stats provides the numeric helpers shared by the aggregates,
// backed by gonum.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Variance calculates the sample variance.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.Variance(values, nil)
}

// PearsonCorrelation calculates the Pearson correlation coefficient
// between two variables. Returns 0 for mismatched or short inputs and
// for zero-variance columns, where the coefficient is undefined.
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// PairwiseComplete filters two masked series down to the rows where
// both values parsed, the way a pairwise-complete correlation treats
// missing data.
func PairwiseComplete(x, y []float64, okX, okY []bool) (fx, fy []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		if okX[i] && okY[i] {
			fx = append(fx, x[i])
			fy = append(fy, y[i])
		}
	}
	return fx, fy
}

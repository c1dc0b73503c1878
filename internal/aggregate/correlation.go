package aggregate

import (
	"log"
	"sort"

	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/stats"
)

func init() {
	Register(&Correlation{})
}

// Correlation computes Pearson correlation for every unordered pair of
// the numeric and dummy-encoded variables present in the frame. The
// matrix grows with the number of distinct categorical values, so the
// variable list is built once and reused for both axes.
type Correlation struct{}

func (*Correlation) Name() string     { return "correlation" }
func (*Correlation) Filename() string { return "correlation_data.json" }

func (*Correlation) Empty() any {
	return models.CorrelationDocument{CorrelationMatrix: []models.CorrelationCell{}}
}

// variable is one correlation input: a numeric series with a mask of
// the rows that parsed.
type variable struct {
	name   string
	values []float64
	ok     []bool
}

func (c *Correlation) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing correlation data")

	vars := correlationVariables(f)

	cells := make([]models.CorrelationCell, 0, len(vars)*(len(vars)+1)/2)
	for i := 0; i < len(vars); i++ {
		for j := i; j < len(vars); j++ {
			x, y := stats.PairwiseComplete(vars[i].values, vars[j].values, vars[i].ok, vars[j].ok)
			cells = append(cells, models.CorrelationCell{
				X:     vars[i].name,
				Y:     vars[j].name,
				Value: stats.PearsonCorrelation(x, y),
			})
		}
	}

	return models.CorrelationDocument{CorrelationMatrix: cells}, nil
}

// correlationVariables builds the ordered variable list: geographic,
// then temporal, then one dummy per distinct categorical value, all
// restricted to columns the frame actually has.
func correlationVariables(f *dataset.Frame) []variable {
	var vars []variable

	for _, col := range []string{"latitude", "longitude", "daylight_hours", "elevation"} {
		if f.Has(col) {
			values, ok := f.FloatColumn(col)
			vars = append(vars, variable{name: col, values: values, ok: ok})
		}
	}

	vars = append(vars, temporalVariables(f)...)

	for _, col := range []string{"state", "apparition_type", "evidence_type"} {
		if f.Has(col) {
			vars = append(vars, dummyVariables(f, col)...)
		}
	}
	return vars
}

// temporalVariables uses year/month/day columns when the source has
// them and otherwise derives all three from the date column, so the
// temporal block never depends on which aggregate ran first.
func temporalVariables(f *dataset.Frame) []variable {
	var derived map[string]variable

	vars := make([]variable, 0, 3)
	for _, col := range []string{"year", "month", "day"} {
		if f.Has(col) {
			values, ok := f.FloatColumn(col)
			vars = append(vars, variable{name: col, values: values, ok: ok})
			continue
		}

		if derived == nil {
			derived = deriveTemporal(f)
		}
		vars = append(vars, derived[col])
	}
	return vars
}

// deriveTemporal parses the date column once into year/month/day
// series.
func deriveTemporal(f *dataset.Frame) map[string]variable {
	n := f.Len()
	year := variable{name: "year", values: make([]float64, n), ok: make([]bool, n)}
	month := variable{name: "month", values: make([]float64, n), ok: make([]bool, n)}
	day := variable{name: "day", values: make([]float64, n), ok: make([]bool, n)}

	for i := 0; i < n; i++ {
		d, ok := parseDate(f.Value(i, "date"))
		if !ok {
			continue
		}
		year.values[i], year.ok[i] = float64(d.Year()), true
		month.values[i], month.ok[i] = float64(d.Month()), true
		day.values[i], day.ok[i] = float64(d.Day()), true
	}
	return map[string]variable{"year": year, "month": month, "day": day}
}

// dummyVariables one-hot encodes a categorical column. Distinct values
// are sorted so the variable order is stable across runs; missing
// cells contribute zero to every dummy.
func dummyVariables(f *dataset.Frame, col string) []variable {
	distinct := make(map[string]struct{})
	for _, v := range f.Column(col) {
		if v != dataset.Missing {
			distinct[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(distinct))
	for v := range distinct {
		values = append(values, v)
	}
	sort.Strings(values)

	vars := make([]variable, 0, len(values))
	for _, value := range values {
		dummy := variable{
			name:   col + "_" + value,
			values: make([]float64, f.Len()),
			ok:     make([]bool, f.Len()),
		}
		for i := 0; i < f.Len(); i++ {
			dummy.ok[i] = true
			if f.Value(i, col) == value {
				dummy.values[i] = 1
			}
		}
		vars = append(vars, dummy)
	}
	return vars
}

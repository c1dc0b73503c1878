package dataset

import "strconv"

// Missing is the cell value used for absent or back-filled data.
// Loading replaces empty cells with it and repair fills whole columns
// with it, so downstream code has a single marker to test against.
const Missing = ""

// Frame is a rectangular, column-major view of the loaded dataset.
// It is read-only after loading: aggregates derive working columns
// (region, year, dummies) locally and never write them back, so no
// state crosses aggregate boundaries.
type Frame struct {
	cols []string
	data map[string][]string
	n    int
}

// New builds a frame from a header and row-major cells. Short rows are
// padded with the missing marker; long rows are truncated.
func New(cols []string, rows [][]string) *Frame {
	f := &Frame{
		cols: append([]string(nil), cols...),
		data: make(map[string][]string, len(cols)),
		n:    len(rows),
	}
	for i, col := range cols {
		values := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				values[r] = row[i]
			} else {
				values[r] = Missing
			}
		}
		f.data[col] = values
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.n }

// Columns returns the column names in source order.
func (f *Frame) Columns() []string { return f.cols }

// Has reports whether a column exists.
func (f *Frame) Has(col string) bool {
	_, ok := f.data[col]
	return ok
}

// Column returns the raw values of a column, or nil when absent.
func (f *Frame) Column(col string) []string {
	return f.data[col]
}

// Value returns the cell at (row, col), or the missing marker when the
// column does not exist.
func (f *Frame) Value(row int, col string) string {
	values, ok := f.data[col]
	if !ok || row < 0 || row >= len(values) {
		return Missing
	}
	return values[row]
}

// Float parses the cell at (row, col) as a float. The second return is
// false for missing cells and coercion failures.
func (f *Frame) Float(row int, col string) (float64, bool) {
	raw := f.Value(row, col)
	if raw == Missing {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FloatColumn parses a whole column. The mask marks cells that parsed.
func (f *Frame) FloatColumn(col string) (values []float64, ok []bool) {
	values = make([]float64, f.n)
	ok = make([]bool, f.n)
	for i := 0; i < f.n; i++ {
		values[i], ok[i] = f.Float(i, col)
	}
	return values, ok
}

// addColumn is used by the loader for repair and default injection.
func (f *Frame) addColumn(col string, fill string) {
	if f.Has(col) {
		return
	}
	values := make([]string, f.n)
	for i := range values {
		values[i] = fill
	}
	f.cols = append(f.cols, col)
	f.data[col] = values
}

// filter keeps only the rows whose index passes keep, preserving order.
func (f *Frame) filter(keep func(row int) bool) {
	var idx []int
	for i := 0; i < f.n; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	for col, values := range f.data {
		kept := make([]string, len(idx))
		for j, i := range idx {
			kept[j] = values[i]
		}
		f.data[col] = kept
	}
	f.n = len(idx)
}

package stats

import "sort"

// KeyCount is one bucket of a value-count distribution.
type KeyCount struct {
	Key   string
	Count int
}

// ValueCounts tallies the values of a column and returns buckets
// sorted by count descending with key ascending as the tie-break, so
// repeated runs produce identical output.
func ValueCounts(values []string) []KeyCount {
	tally := make(map[string]int)
	for _, v := range values {
		tally[v]++
	}
	return SortedCounts(tally)
}

// SortedCounts orders an existing tally by count descending, key
// ascending on ties.
func SortedCounts(tally map[string]int) []KeyCount {
	counts := make([]KeyCount, 0, len(tally))
	for k, c := range tally {
		counts = append(counts, KeyCount{Key: k, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}

// DistinctCount returns the number of distinct values in a slice.
func DistinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

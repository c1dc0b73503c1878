package aggregate

import (
	"log"
	"sort"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/stats"
)

// topApparitionStates caps the top-apparition-by-state table.
const topApparitionStates = 15

func init() {
	Register(&LocationAnalysis{})
}

// LocationAnalysis counts sightings by state, country and region, and
// picks the dominant apparition type per state.
type LocationAnalysis struct{}

func (*LocationAnalysis) Name() string     { return "location" }
func (*LocationAnalysis) Filename() string { return "location_analysis.json" }

func (*LocationAnalysis) Empty() any {
	return models.LocationDocument{
		StateCounts:          []models.StateCount{},
		CountryCounts:        []models.CountryCount{},
		TopApparitionByState: []models.TopApparition{},
		RegionCounts:         []models.RegionCount{},
	}
}

func (l *LocationAnalysis) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing location analysis data")

	states := make([]models.StateCount, 0)
	for _, kc := range stats.ValueCounts(f.Column("state")) {
		states = append(states, models.StateCount{State: kc.Key, Count: kc.Count})
	}

	countries := make([]models.CountryCount, 0)
	for _, kc := range stats.ValueCounts(f.Column("country")) {
		countries = append(countries, models.CountryCount{Country: kc.Key, Count: kc.Count})
	}

	return models.LocationDocument{
		StateCounts:          states,
		CountryCounts:        countries,
		TopApparitionByState: topApparitionByState(f),
		RegionCounts:         regionCounts(f),
	}, nil
}

// topApparitionByState keeps the highest-count apparition type per
// state, alphabetically-first apparition on a tie, then the 15 states
// with the highest counts.
func topApparitionByState(f *dataset.Frame) []models.TopApparition {
	tally := make(map[string]map[string]int)
	for i := 0; i < f.Len(); i++ {
		state := f.Value(i, "state")
		app := f.Value(i, "apparition_type")
		if tally[state] == nil {
			tally[state] = make(map[string]int)
		}
		tally[state][app]++
	}

	top := make([]models.TopApparition, 0, len(tally))
	for state, apps := range tally {
		best := models.TopApparition{State: state}
		for _, kc := range stats.SortedCounts(apps) {
			best.ApparitionType = kc.Key
			best.Count = kc.Count
			break
		}
		top = append(top, best)
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].State < top[j].State
	})
	if len(top) > topApparitionStates {
		top = top[:topApparitionStates]
	}
	return top
}

// regionCounts maps states through the fixed 4-way region table.
// Unmapped states are counted nowhere.
func regionCounts(f *dataset.Frame) []models.RegionCount {
	tally := make(map[string]int)
	for _, state := range f.Column("state") {
		if region, ok := classify.Region(state); ok {
			tally[region]++
		}
	}

	counts := make([]models.RegionCount, 0, len(tally))
	for _, kc := range stats.SortedCounts(tally) {
		counts = append(counts, models.RegionCount{Region: kc.Key, Count: kc.Count})
	}
	return counts
}

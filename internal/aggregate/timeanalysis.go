package aggregate

import (
	"log"
	"sort"
	"strings"

	"github.com/dsci550/haunted-places-backend-go/internal/classify"
	"github.com/dsci550/haunted-places-backend-go/internal/dataset"
	"github.com/dsci550/haunted-places-backend-go/internal/models"
	"github.com/dsci550/haunted-places-backend-go/internal/stats"
)

func init() {
	Register(&TimeAnalysis{})
}

// TimeAnalysis derives the three temporal distributions: sightings per
// year, time-of-day buckets, and mean daylight hours per state.
type TimeAnalysis struct{}

func (*TimeAnalysis) Name() string     { return "time" }
func (*TimeAnalysis) Filename() string { return "time_analysis.json" }

func (*TimeAnalysis) Empty() any {
	return models.TimeDocument{
		YearCounts:      []models.YearCount{},
		TimeOfDayCounts: []models.TimeOfDayCount{},
		DaylightByState: []models.DaylightByState{},
	}
}

func (t *TimeAnalysis) Compute(f *dataset.Frame) (any, error) {
	log.Println("Preparing time analysis data")

	return models.TimeDocument{
		YearCounts:      yearCounts(f),
		TimeOfDayCounts: timeOfDayCounts(f),
		DaylightByState: daylightByState(f),
	}, nil
}

// yearCounts prefers an explicit year column over parsing the date
// column. Non-positive and unparseable years are dropped; output is
// ascending by year.
func yearCounts(f *dataset.Frame) []models.YearCount {
	tally := make(map[int]int)

	if f.Has("year") {
		for i := 0; i < f.Len(); i++ {
			v, ok := f.Float(i, "year")
			if !ok || int(v) <= 0 {
				continue
			}
			tally[int(v)]++
		}
	} else {
		for i := 0; i < f.Len(); i++ {
			d, ok := parseDate(f.Value(i, "date"))
			if !ok || d.Year() <= 0 {
				continue
			}
			tally[d.Year()]++
		}
	}

	years := make([]int, 0, len(tally))
	for y := range tally {
		years = append(years, y)
	}
	sort.Ints(years)

	counts := make([]models.YearCount, 0, len(years))
	for _, y := range years {
		counts = append(counts, models.YearCount{Year: y, Count: tally[y]})
	}
	log.Printf("Found %d years with data", len(counts))
	return counts
}

// timeOfDayCounts prefers time_of_day over time. When more than 90% of
// the values are Unknown and the event-count descriptor columns exist,
// the records are relabeled from descriptors with a description
// keyword fallback. Best-effort enrichment only.
func timeOfDayCounts(f *dataset.Frame) []models.TimeOfDayCount {
	col := "time"
	if f.Has("time_of_day") {
		col = "time_of_day"
	}

	values := append([]string(nil), f.Column(col)...)

	unknown := 0
	for _, v := range values {
		if v == classify.Unknown {
			unknown++
		}
	}

	relabel := f.Len() > 0 &&
		float64(unknown) > 0.9*float64(f.Len()) &&
		f.Has("Morning_Event_Count_Description") &&
		f.Has("Evening_Event_Count_Description")
	if relabel {
		log.Println("Most time values are Unknown, creating categories from additional data")
		for i := range values {
			label, ok := classify.TimeOfDayFromDescriptors(
				f.Value(i, "Morning_Event_Count_Description"),
				f.Value(i, "Evening_Event_Count_Description"),
				f.Value(i, "Dusk_Event_Count_Description"),
			)
			if !ok {
				label = classify.TimeOfDayFromDescription(f.Value(i, "description"))
			}
			values[i] = label
		}
	}

	kcs := stats.ValueCounts(values)
	counts := make([]models.TimeOfDayCount, 0, len(kcs))
	for _, kc := range kcs {
		counts = append(counts, models.TimeOfDayCount{TimeOfDay: kc.Key, Count: kc.Count})
	}
	return counts
}

// daylightByState averages daylight hours per state, preferring a
// numeric column, then the textual descriptor column, then the
// injected daylight_hours default. When the result is degenerate
// (three or fewer distinct means) it is replaced with values from the
// latitude model, flagged synthetic.
func daylightByState(f *dataset.Frame) []models.DaylightByState {
	var hours func(row int) (float64, bool)
	switch {
	case f.Has("average_daylight_hours"):
		hours = func(row int) (float64, bool) {
			return f.Float(row, "average_daylight_hours")
		}
	case f.Has("Avg_Daylight_Hours_In_Year_Description"):
		log.Println("Extracting numeric values from daylight descriptions")
		hours = func(row int) (float64, bool) {
			return classify.DescriptorHours(f.Value(row, "Avg_Daylight_Hours_In_Year_Description")), true
		}
	default:
		hours = func(row int) (float64, bool) {
			return f.Float(row, "daylight_hours")
		}
	}

	byState := make(map[string][]float64)
	for i := 0; i < f.Len(); i++ {
		state := f.Value(i, "state")
		if h, ok := hours(i); ok {
			byState[state] = append(byState[state], h)
		} else {
			byState[state] = append(byState[state], classify.DefaultDaylightHours)
		}
	}

	states := make([]string, 0, len(byState))
	for state := range byState {
		states = append(states, state)
	}
	sort.Strings(states)

	result := make([]models.DaylightByState, 0, len(states))
	means := make([]float64, 0, len(states))
	for _, state := range states {
		m := stats.Mean(byState[state])
		means = append(means, m)
		result = append(result, models.DaylightByState{State: state, AverageDaylightHours: m})
	}

	if len(result) > 0 && stats.DistinctCount(means) <= 3 {
		log.Println("Daylight hours are flat across states, generating synthetic variation")
		result = syntheticDaylightByState(f, states)
	}
	return result
}

// syntheticDaylightByState fills the daylight table from per-state
// mean latitude. States in the fallback latitude table use the fixed
// latitude regardless of their records.
func syntheticDaylightByState(f *dataset.Frame, states []string) []models.DaylightByState {
	latSum := make(map[string]float64)
	latN := make(map[string]int)
	for i := 0; i < f.Len(); i++ {
		if lat, ok := f.Float(i, "latitude"); ok {
			state := f.Value(i, "state")
			latSum[state] += lat
			latN[state]++
		}
	}

	result := make([]models.DaylightByState, 0, len(states))
	for _, state := range states {
		entry := models.DaylightByState{State: state, Synthetic: true}

		if lat, ok := classify.FallbackStateLatitudes[strings.ToLower(state)]; ok {
			log.Printf("Using default latitude for %s: %.1f", state, lat)
			entry.AverageDaylightHours = classify.SyntheticDaylight(lat)
		} else if latN[state] > 0 {
			entry.AverageDaylightHours = classify.SyntheticDaylight(latSum[state] / float64(latN[state]))
		} else {
			log.Printf("State %s has no latitude data, using default value", state)
			entry.AverageDaylightHours = classify.DefaultDaylightHours
		}
		result = append(result, entry)
	}
	return result
}

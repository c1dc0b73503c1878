package classify

import "strings"

// regionStates enumerates the fixed 4-way US region grouping. All 50
// states plus DC appear exactly once; DC is grouped under South.
var regionStates = map[string][]string{
	"Northeast": {
		"maine", "new hampshire", "vermont", "massachusetts", "rhode island",
		"connecticut", "new york", "new jersey", "pennsylvania",
	},
	"Midwest": {
		"ohio", "michigan", "indiana", "illinois", "wisconsin", "minnesota",
		"iowa", "missouri", "north dakota", "south dakota", "nebraska", "kansas",
	},
	"South": {
		"delaware", "maryland", "virginia", "west virginia", "kentucky",
		"north carolina", "south carolina", "tennessee", "georgia", "florida",
		"alabama", "mississippi", "arkansas", "louisiana", "texas", "oklahoma",
		"washington dc",
	},
	"West": {
		"montana", "idaho", "wyoming", "colorado", "new mexico", "arizona",
		"utah", "nevada", "california", "oregon", "washington", "alaska", "hawaii",
	},
}

var stateRegion = func() map[string]string {
	m := make(map[string]string)
	for region, states := range regionStates {
		for _, state := range states {
			m[state] = region
		}
	}
	return m
}()

// Region maps a state name to its region. The lookup is
// case-insensitive; unmapped states (misspellings, foreign entries)
// return false and are excluded from region counts.
func Region(state string) (string, bool) {
	region, ok := stateRegion[strings.ToLower(strings.TrimSpace(state))]
	return region, ok
}

package classify

import "strings"

// TimeOfDayCategories is the closed category set for the time-of-day
// distribution.
var TimeOfDayCategories = []string{"Morning", "Afternoon", "Evening", "Night", "Dusk", Unknown}

// TimeOfDayFromDescriptors labels a record from the event-count
// descriptor columns: the first of morning/evening/dusk whose
// descriptor reads "high" wins. The second return is false when no
// descriptor applies.
func TimeOfDayFromDescriptors(morning, evening, dusk string) (string, bool) {
	if strings.Contains(strings.ToLower(morning), "high") {
		return "Morning", true
	}
	if strings.Contains(strings.ToLower(evening), "high") {
		return "Evening", true
	}
	if strings.Contains(strings.ToLower(dusk), "high") {
		return "Dusk", true
	}
	return Unknown, false
}

// timeOfDayKeywords is checked in order against the description when
// the descriptors are inconclusive. Best-effort enrichment, not a
// classifier.
var timeOfDayKeywords = []struct {
	label    string
	keywords []string
}{
	{"Night", []string{"night", "evening", "midnight"}},
	{"Morning", []string{"morning", "dawn"}},
	{"Afternoon", []string{"afternoon", "noon"}},
	{"Dusk", []string{"dusk", "sunset", "twilight"}},
}

// TimeOfDayFromDescription infers a time-of-day label from free text,
// or Unknown.
func TimeOfDayFromDescription(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range timeOfDayKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.label
			}
		}
	}
	return Unknown
}

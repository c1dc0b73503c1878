// Package classify holds the static classification tables used by the
// aggregates: evidence keyword matching, time-of-day labeling, the
// state-to-region table and daylight-hour descriptor buckets. All
// tables are fixed at compile time and nothing here mutates shared
// state, so classification is safe from any aggregate.
package classify

import "strings"

// EvidenceCategory pairs a category label with the keywords that
// assign it. Matching is case-insensitive substring search against the
// record description.
type EvidenceCategory struct {
	Name     string
	Keywords []string
}

// EvidenceCategories is the closed, ordered evidence category set.
// Order matters: the first-match derivation stops at the first
// category with a keyword hit.
var EvidenceCategories = []EvidenceCategory{
	{"Sound", []string{"sound", "noise", "voice", "whisper", "footstep", "scream", "crying", "laugh", "music"}},
	{"Visual", []string{"appear", "figure", "shadow", "apparition", "image", "manifestation", "vision", "ghost"}},
	{"Temperature", []string{"cold", "chill", "temperature", "freezing", "icy", "hot", "warm", "heat"}},
	{"Touch", []string{"touch", "grab", "push", "pull", "physical", "sensation", "feel"}},
	{"EMF", []string{"emf", "electromagnetic", "electricity", "electronic", "battery", "device"}},
	{"Smell", []string{"smell", "odor", "scent", "perfume", "burning"}},
	{"Movement", []string{"move", "movement", "floating", "flying", "throw", "slam", "door", "window"}},
	{"Poltergeist", []string{"poltergeist", "thrown", "move", "breaking"}},
	{"Orbs", []string{"orb", "ball of light", "glowing ball"}},
	{"EVP", []string{"evp", "electronic voice", "recording", "audio"}},
}

// Unknown is the label for records no table matches.
const Unknown = "Unknown"

// EvidenceAll returns every matching category joined with ", " in
// table order. This is the display labeling used by map records; the
// evidence-counts aggregate uses EvidenceFirst instead. The two
// derivations are deliberately separate outputs.
func EvidenceAll(description string) string {
	if description == "" {
		return Unknown
	}
	desc := strings.ToLower(description)

	var found []string
	for _, cat := range EvidenceCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(desc, kw) {
				found = append(found, cat.Name)
				break
			}
		}
	}
	if len(found) == 0 {
		return Unknown
	}
	return strings.Join(found, ", ")
}

// EvidenceFirst returns the first category in table order with a
// keyword hit, or Unknown. Each record contributes to exactly one
// category, so first-match counts sum to the record count.
func EvidenceFirst(description string) string {
	if description == "" {
		return Unknown
	}
	desc := strings.ToLower(description)

	for _, cat := range EvidenceCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(desc, kw) {
				return cat.Name
			}
		}
	}
	return Unknown
}

package classify

import "strings"

// DefaultDaylightHours is used when a record carries no usable
// daylight information.
const DefaultDaylightHours = 12.0

// DescriptorHours maps a textual daylight descriptor to fixed numeric
// buckets. "very high" must be tested before "high" and "very low"
// before "low" since matching is by substring.
func DescriptorHours(value string) float64 {
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "very high"):
		return 14.0
	case strings.Contains(v, "high"):
		return 13.0
	case strings.Contains(v, "moderate"):
		return 12.0
	case strings.Contains(v, "very low"):
		return 10.0
	case strings.Contains(v, "low"):
		return 11.0
	default:
		return DefaultDaylightHours
	}
}

// FallbackStateLatitudes covers states whose records are known to lack
// latitude data, so the synthetic daylight model still has an input.
var FallbackStateLatitudes = map[string]float64{
	"colorado":       39.0,
	"connecticut":    41.6,
	"delaware":       39.0,
	"minnesota":      46.0,
	"mississippi":    32.7,
	"missouri":       38.6,
	"rhode island":   41.7,
	"south carolina": 33.8,
	"south dakota":   44.5,
}

// SyntheticDaylight estimates daylight hours from latitude with a
// linear model. It fabricates variation for visualization when the
// source data is flat; results are flagged synthetic, never blended
// silently with measured values.
func SyntheticDaylight(latitude float64) float64 {
	return 12.0 + (latitude-40.0)*0.1
}

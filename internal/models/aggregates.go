package models

// MapRecord is one entry of the map aggregate, 1:1 with surviving rows.
// Date is taken from the evidence_date column when the source has one.
type MapRecord struct {
	Location    string  `json:"location"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Evidence    string  `json:"evidence"`
}

// MapDocument is the top-level shape of map_data.json.
type MapDocument struct {
	MapData []MapRecord `json:"map_data"`
}

// YearCount is one year bucket, sorted ascending by year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// TimeOfDayCount is one bucket of the closed time-of-day category set.
type TimeOfDayCount struct {
	TimeOfDay string `json:"time_of_day"`
	Count     int    `json:"count"`
}

// DaylightByState carries the mean daylight hours for one state.
// Synthetic marks values generated from the latitude model rather than
// measured source data.
type DaylightByState struct {
	State                string  `json:"state"`
	AverageDaylightHours float64 `json:"average_daylight_hours"`
	Synthetic            bool    `json:"synthetic,omitempty"`
}

// TimeDocument is the top-level shape of time_analysis.json.
type TimeDocument struct {
	YearCounts      []YearCount       `json:"year_counts"`
	TimeOfDayCounts []TimeOfDayCount  `json:"time_of_day_counts"`
	DaylightByState []DaylightByState `json:"daylight_by_state"`
}

// ApparitionCount is one apparition-type bucket, verbatim column values.
type ApparitionCount struct {
	ApparitionType string `json:"apparition_type"`
	Count          int    `json:"count"`
}

// EvidenceDocument is the top-level shape of evidence_analysis.json.
type EvidenceDocument struct {
	EvidenceCounts   map[string]int    `json:"evidence_counts"`
	ApparitionCounts []ApparitionCount `json:"apparition_counts"`
}

// StateCount is one state bucket of the location aggregate.
type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

// CountryCount is one country bucket of the location aggregate.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// TopApparition is the highest-count apparition type for one state.
type TopApparition struct {
	State          string `json:"state"`
	ApparitionType string `json:"apparition_type"`
	Count          int    `json:"count"`
}

// RegionCount is one bucket of the fixed 4-way region grouping.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// LocationDocument is the top-level shape of location_analysis.json.
type LocationDocument struct {
	StateCounts          []StateCount    `json:"state_counts"`
	CountryCounts        []CountryCount  `json:"country_counts"`
	TopApparitionByState []TopApparition `json:"top_apparition_by_state"`
	RegionCounts         []RegionCount   `json:"region_counts"`
}

// CorrelationCell is one (x, y) pair of the upper-triangle correlation
// matrix including the diagonal. Value is in [-1, 1] with NaN coerced
// to 0, so a zero-variance self-pair reads 0 rather than 1.
type CorrelationCell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

// CorrelationDocument is the top-level shape of correlation_data.json.
type CorrelationDocument struct {
	CorrelationMatrix []CorrelationCell `json:"correlation_matrix"`
}

// AirQualitySplit is the count/percentage pair for one visual-evidence
// truth value within an air-quality category.
type AirQualitySplit struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AirQualityCategory summarizes one air-quality category over the
// filtered subset. Percentages are relative to the filtered row count,
// not the full dataset.
type AirQualityCategory struct {
	TotalCount      int                        `json:"total_count"`
	TotalPercentage float64                    `json:"total_percentage"`
	Breakdown       map[string]AirQualitySplit `json:"breakdown"`
}

// AirQualityMetadata carries bookkeeping for the air-quality cross-tab.
type AirQualityMetadata struct {
	TotalRowsAnalyzed int    `json:"total_rows_analyzed"`
	Error             string `json:"error,omitempty"`
}

// AirQualityDocument is the top-level shape of air_pollution.json.
type AirQualityDocument struct {
	Categories map[string]AirQualityCategory `json:"categories"`
	Metadata   AirQualityMetadata            `json:"metadata"`
}

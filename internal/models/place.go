package models

// Place represents a single reported haunting after loading and repair.
// Rows without a coercible latitude/longitude never become a Place.
type Place struct {
	ID          int64   `json:"id,omitempty" db:"id"`
	Location    string  `json:"location" db:"location"`
	State       string  `json:"state" db:"state"`
	Country     string  `json:"country" db:"country"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`
	Description string  `json:"description" db:"description"`
	Date        string  `json:"date" db:"date"`
	Evidence    string  `json:"evidence" db:"evidence"`
}

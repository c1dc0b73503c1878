package repository

import (
	"database/sql"
	"fmt"

	"github.com/dsci550/haunted-places-backend-go/internal/models"
)

// PlaceRepository handles database operations for haunted places
type PlaceRepository struct {
	db *sql.DB
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// ReplaceAll replaces the stored record set with the given places in a
// single transaction: every run recomputes from scratch, so stale rows
// from a previous run never survive.
func (r *PlaceRepository) ReplaceAll(places []models.Place) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM places"); err != nil {
		return fmt.Errorf("failed to clear places: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO places (location, state, country, latitude, longitude, description, date, evidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		if _, err := stmt.Exec(p.Location, p.State, p.Country, p.Latitude, p.Longitude, p.Description, p.Date, p.Evidence); err != nil {
			return fmt.Errorf("failed to insert place: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit places: %w", err)
	}
	return nil
}

// Count returns the number of stored places.
func (r *PlaceRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM places").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count places: %w", err)
	}
	return count, nil
}

// ListByState returns the stored places for one state, most recently
// inserted first.
func (r *PlaceRepository) ListByState(state string, limit int) ([]models.Place, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(`
		SELECT id, location, state, country, latitude, longitude, description, date, evidence
		FROM places
		WHERE LOWER(state) = LOWER(?)
		ORDER BY id DESC
		LIMIT ?
	`, state, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var p models.Place
		var description, date, evidence sql.NullString
		if err := rows.Scan(&p.ID, &p.Location, &p.State, &p.Country, &p.Latitude, &p.Longitude, &description, &date, &evidence); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		p.Description = description.String
		p.Date = date.String
		p.Evidence = evidence.String
		places = append(places, p)
	}
	return places, rows.Err()
}

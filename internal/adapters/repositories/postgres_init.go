package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT,
		venue TEXT,
		starts_at TIMESTAMPTZ NOT NULL,
		ends_at TIMESTAMPTZ,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		source TEXT NOT NULL DEFAULT 'unknown'
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		from_lat DOUBLE PRECISION NOT NULL,
		from_lng DOUBLE PRECISION NOT NULL,
		to_lat DOUBLE PRECISION NOT NULL,
		to_lng DOUBLE PRECISION NOT NULL,
		distance_km INTEGER NOT NULL,
		duration_min INTEGER NOT NULL,
		PRIMARY KEY (from_lat, from_lng, to_lat, to_lng)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_starts_at
	ON stops(starts_at);
	`

	statements := []string{
		createStopsQuery,
		createRouteCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	StopID   int        `json:"stop_id"`
	Name     string     `json:"name"`
	Region   string     `json:"region"`
	Venue    string     `json:"venue"`
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Lat      *float64   `json:"lat"`
	Lng      *float64   `json:"lng"`
	Source   string     `json:"source"`
}

// Populate the database with stop data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stops: read %q: %w", jsonPath, err)
	}

	var data []StopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed stops: parse json: %w", err)
	}

	rows := make([]StopSeed, 0, len(data))
	for i, item := range data {
		if item.StopID <= 0 {
			return fmt.Errorf("seed stops: invalid stop_id at index %d: %d", i+1, item.StopID)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed stops: item at index %d: name cannot be empty", i+1)
		}
		item.Name = name
		if strings.TrimSpace(item.Source) == "" {
			item.Source = "unknown"
		}
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO stops (stop_id, name, region, venue, starts_at, ends_at, lat, lng, source)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (stop_id) DO UPDATE
	SET name = EXCLUDED.name,
		region = EXCLUDED.region,
		venue = EXCLUDED.venue,
		starts_at = EXCLUDED.starts_at,
		ends_at = EXCLUDED.ends_at,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		source = EXCLUDED.source;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		if _, err := stmt.Exec(s.StopID, s.Name, s.Region, s.Venue, s.StartsAt, s.EndsAt, s.Lat, s.Lng, s.Source); err != nil {
			return fmt.Errorf("seed stops: insert stop_id=%d: %w", s.StopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stops: commit tx: %w", err)
	}

	return nil
}

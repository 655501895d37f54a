package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-route-service/internal/domain"
)

// Postgres-backed implementation of the StopRepository port.
type PostgresStopRepository struct{ DB *sql.DB }

func NewPostgresStopRepository(db *sql.DB) *PostgresStopRepository {
	return &PostgresStopRepository{DB: db}
}

// Return all stops ordered ascending by start time.
func (s *PostgresStopRepository) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if s.DB == nil {
		return nil, errors.New("stop repository: DB is nil")
	}

	query := `
	SELECT
		stop_id,
		name,
		COALESCE(region, ''),
		COALESCE(venue, ''),
		starts_at,
		ends_at,
		lat,
		lng,
		source
	FROM stops
	ORDER BY starts_at, stop_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stops: query stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.Stop, 0, 64)
	for rows.Next() {
		var (
			stop     domain.Stop
			endsAt   sql.NullTime
			lat, lng sql.NullFloat64
			source   string
		)
		if err := rows.Scan(&stop.StopID, &stop.Name, &stop.Region, &stop.Venue, &stop.StartsAt, &endsAt, &lat, &lng, &source); err != nil {
			return nil, fmt.Errorf("list stops: scan row: %w", err)
		}

		if endsAt.Valid {
			t := endsAt.Time
			stop.EndsAt = &t
		}
		if lat.Valid && lng.Valid {
			la, ln := lat.Float64, lng.Float64
			stop.Lat = &la
			stop.Lng = &ln
		}
		stop.Source = parseSource(source)

		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}

func parseSource(s string) domain.StopSource {
	switch domain.StopSource(s) {
	case domain.SourceManual, domain.SourceImport:
		return domain.StopSource(s)
	default:
		return domain.SourceUnknown
	}
}

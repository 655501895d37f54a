package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-route-service/internal/domain"
	"tour-route-service/internal/platform/obs"
)

// PostgresRouteCache is the SQL-backed implementation of the RouteCacheStore
// port. Coordinates are stored pre-rounded to the cache precision; the four
// coordinate columns form the composite primary key.
type PostgresRouteCache struct {
	DB *sql.DB
}

func NewPostgresRouteCache(db *sql.DB) *PostgresRouteCache {
	return &PostgresRouteCache{DB: db}
}

// ReadAll fetches every cached route entry in a single bulk read.
// The table stays small enough for this (one row per distinct rounded pair),
// and one round-trip beats one query per itinerary leg.
func (s *PostgresRouteCache) ReadAll(ctx context.Context) (_ []domain.RouteCacheEntry, err error) {
	defer obs.Time(ctx, "routecache.ReadAll")(&err)

	if s.DB == nil {
		return nil, errors.New("route cache: db is nil")
	}

	q := `
	SELECT from_lat, from_lng, to_lat, to_lng, distance_km, duration_min
	FROM route_cache;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("read route cache: query route_cache table: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RouteCacheEntry, 0, 256)
	for rows.Next() {
		var e domain.RouteCacheEntry
		if err := rows.Scan(&e.FromLat, &e.FromLng, &e.ToLat, &e.ToLng, &e.DistanceKm, &e.DurationMin); err != nil {
			return nil, fmt.Errorf("read route cache: scan rows: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read route cache: row iteration: %w", err)
	}

	return entries, nil
}

// UpsertMany inserts new route entries, silently skipping any whose composite
// key already exists. Concurrent callers racing to fill the same entry are
// therefore safe: the first writer wins and the duplicate insert is a no-op.
func (s *PostgresRouteCache) UpsertMany(ctx context.Context, entries []domain.RouteCacheEntry) (err error) {
	defer obs.Time(ctx, "routecache.UpsertMany")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if len(entries) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert route cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO route_cache (from_lat, from_lng, to_lat, to_lng, distance_km, duration_min)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (from_lat, from_lng, to_lat, to_lng) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("insert route cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			domain.RoundCoordinate(e.FromLat),
			domain.RoundCoordinate(e.FromLng),
			domain.RoundCoordinate(e.ToLat),
			domain.RoundCoordinate(e.ToLng),
			e.DistanceKm,
			e.DurationMin,
		); err != nil {
			return fmt.Errorf("insert route cache key=%q: %w", e.Key(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert route cache commit: %w", err)
	}

	return nil
}

package domain

import (
	"fmt"
	"math"
)

// CacheCoordinatePrecision is the number of decimal places coordinates are
// rounded to before they become cache keys (~11 m). Rounding first collapses
// near-duplicate geocodings of the same place onto one cache entry.
const CacheCoordinatePrecision = 4

// Driving distance and duration between two stops, rounded to whole units.
type Distance struct {
	DistanceKm  int
	DurationMin int
}

// A persisted routing fact between two rounded coordinate pairs.
// Entries are insert-only: once written they are never updated or deleted.
type RouteCacheEntry struct {
	FromLat     float64
	FromLng     float64
	ToLat       float64
	ToLng       float64
	DistanceKm  int
	DurationMin int
}

// Key returns the canonical cache key for the entry's endpoints.
func (e RouteCacheEntry) Key() string {
	return fmt.Sprintf("%.4f,%.4f-%.4f,%.4f", e.FromLat, e.FromLng, e.ToLat, e.ToLng)
}

// RoundCoordinate rounds a latitude or longitude to the cache precision.
func RoundCoordinate(v float64) float64 {
	scale := math.Pow10(CacheCoordinatePrecision)
	return math.Round(v*scale) / scale
}

// PairKey builds the canonical cache key for a directed coordinate pair.
// Both endpoints are rounded before formatting so that keys are stable
// across repeated geocodings.
func PairKey(from, to Coordinates) string {
	return fmt.Sprintf("%.4f,%.4f-%.4f,%.4f",
		RoundCoordinate(from.Lat),
		RoundCoordinate(from.Lng),
		RoundCoordinate(to.Lat),
		RoundCoordinate(to.Lng),
	)
}

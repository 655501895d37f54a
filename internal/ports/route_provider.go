package ports

import (
	"context"

	"tour-route-service/internal/domain"
)

// Raw routing metrics as reported by the external service.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for retrieving a driving route between two coordinates.
type RouteProvider interface {
	// Return the best route's cumulative distance and duration.
	Route(ctx context.Context, from, to domain.Coordinates) (RouteResult, error)
}

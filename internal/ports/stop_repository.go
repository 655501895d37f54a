package ports

import (
	"context"

	"tour-route-service/internal/domain"
)

// Port: read-only boundary for the canonical stop store.
type StopRepository interface {
	// Retrieve all stops ordered ascending by start time.
	ListStops(ctx context.Context) ([]domain.Stop, error)
}

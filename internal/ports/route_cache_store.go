package ports

import (
	"context"

	"tour-route-service/internal/domain"
)

// Port: persistent, shared store of routing facts.
//
// The store is append-only from this service's point of view: entries are
// inserted once and never updated or deleted. UpsertMany must silently ignore
// conflicting inserts so that concurrent callers racing to fill the same
// entry never fail.
type RouteCacheStore interface {
	// Return every cached entry in one bulk read.
	ReadAll(ctx context.Context) ([]domain.RouteCacheEntry, error)
	// Insert new entries, ignoring any whose composite coordinate key exists.
	UpsertMany(ctx context.Context, entries []domain.RouteCacheEntry) error
}

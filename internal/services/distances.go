package services

import (
	"context"
	"math"

	"tour-route-service/internal/domain"
	"tour-route-service/internal/platform/metrics"
	"tour-route-service/internal/platform/obs"
	"tour-route-service/internal/ports"
	"tour-route-service/pkg/logger"
)

// A directed pair of coordinates needing a driving distance.
type CoordinatePair struct {
	From domain.Coordinates
	To   domain.Coordinates
}

// DistanceService resolves driving distances for coordinate pairs through the
// persistent route cache, calling the external routing service only for
// misses.
//
// The design degrades gracefully at every step: a failed cache read means
// "fetch everything", a failed external call skips that pair, and a failed
// cache write still returns the computed distances to the caller.
type DistanceService struct {
	store    ports.RouteCacheStore
	provider ports.RouteProvider
}

func NewDistanceService(store ports.RouteCacheStore, provider ports.RouteProvider) *DistanceService {
	return &DistanceService{store: store, provider: provider}
}

// GetOrFetchDistances returns a distance per requested pair, keyed the same
// way as the cache (rounded coordinates, "lat,lng-lat,lng").
//
// Lookup is two-phase: one bulk read of the whole cache partitions the pairs
// into hits and misses, then misses are fetched sequentially (the provider
// bounds the call rate) in their original order. Newly fetched results are
// bulk-upserted back into the store with duplicate-ignoring semantics, so
// concurrent callers computing the same pair never conflict.
//
// Pairs that cannot be resolved are omitted from the result; the returned
// error is non-nil only when the context ends mid-fetch, and the partial map
// is still valid data.
func (s *DistanceService) GetOrFetchDistances(
	ctx context.Context,
	pairs []CoordinatePair,
) (_ map[string]domain.Distance, err error) {
	defer obs.Time(ctx, "distances.GetOrFetchDistances")(&err)

	log := logger.Get()
	results := make(map[string]domain.Distance, len(pairs))
	if len(pairs) == 0 {
		return results, nil
	}

	cached := make(map[string]domain.Distance)
	if s.store != nil {
		entries, readErr := s.store.ReadAll(ctx)
		if readErr != nil {
			// Degrade to an empty cache rather than failing the build.
			log.Warn().Err(readErr).Msg("route cache read failed, fetching all pairs")
		} else {
			for _, e := range entries {
				cached[e.Key()] = domain.Distance{DistanceKm: e.DistanceKm, DurationMin: e.DurationMin}
			}
		}
	}

	// Partition into hits and misses, deduplicating by key but preserving
	// the original request order for the fetch phase.
	seen := make(map[string]struct{}, len(pairs))
	missing := make([]CoordinatePair, 0, len(pairs))
	for _, p := range pairs {
		key := domain.PairKey(p.From, p.To)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if d, ok := cached[key]; ok {
			metrics.RouteCacheLookupsTotal.WithLabelValues("hit").Inc()
			results[key] = d
			continue
		}
		metrics.RouteCacheLookupsTotal.WithLabelValues("miss").Inc()
		missing = append(missing, p)
	}

	if len(missing) == 0 {
		return results, nil
	}

	fresh := make([]domain.RouteCacheEntry, 0, len(missing))
	for _, p := range missing {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			break
		}

		route, fetchErr := s.provider.Route(ctx, p.From, p.To)
		if fetchErr != nil {
			// One unroutable pair must not abort the batch.
			log.Warn().
				Err(fetchErr).
				Str("key", domain.PairKey(p.From, p.To)).
				Msg("route fetch failed, skipping pair")
			continue
		}

		entry := domain.RouteCacheEntry{
			FromLat:     domain.RoundCoordinate(p.From.Lat),
			FromLng:     domain.RoundCoordinate(p.From.Lng),
			ToLat:       domain.RoundCoordinate(p.To.Lat),
			ToLng:       domain.RoundCoordinate(p.To.Lng),
			DistanceKm:  int(math.Round(route.DistanceMeters / 1000)),
			DurationMin: int(math.Round(route.DurationSeconds / 60)),
		}
		fresh = append(fresh, entry)
		results[entry.Key()] = domain.Distance{DistanceKm: entry.DistanceKm, DurationMin: entry.DurationMin}
	}

	if s.store != nil && len(fresh) > 0 {
		if writeErr := s.store.UpsertMany(ctx, fresh); writeErr != nil {
			// The caller still gets the computed distances; only the next
			// run loses the warm cache.
			log.Warn().Err(writeErr).Int("entries", len(fresh)).Msg("route cache write failed")
		}
	}

	return results, err
}

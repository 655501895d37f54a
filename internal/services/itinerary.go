package services

import (
	"context"
	"fmt"

	"tour-route-service/internal/domain"
	"tour-route-service/internal/geo"
	"tour-route-service/internal/platform/metrics"
	"tour-route-service/internal/platform/obs"
	"tour-route-service/internal/ports"
	"tour-route-service/internal/tour"
	"tour-route-service/pkg/logger"
)

// The fully enriched result of one itinerary build: stops grouped into tours
// plus the driving distances for consecutive legs.
type Itinerary struct {
	Groups    []domain.TourGroup
	Distances map[string]domain.Distance
}

type BuildItineraryRequest struct {
	// GapThresholdDays closes a tour when exceeded; <= 0 selects the default.
	GapThresholdDays int
}

// BuildItinerary drives the whole pipeline for the current stop list:
// resolve coordinates, segment into tours, and attach cached or freshly
// fetched driving distances between consecutive stops.
//
// Stops that cannot be geocoded are dropped from the geographic output (they
// remain visible in list-only views upstream). Distance legs only span stops
// that survived geocoding.
//
// The build is idempotent: a second run over the same stops reuses the
// populated cache and issues zero external calls.
func BuildItinerary(
	ctx context.Context,
	req BuildItineraryRequest,
	repo ports.StopRepository,
	distances *DistanceService,
) (_ *Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Build")(&err)

	stops, err := repo.ListStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: list stops: %w", err)
	}

	threshold := req.GapThresholdDays
	if threshold <= 0 {
		threshold = tour.DefaultGapThresholdDays
	}

	resolved := make([]domain.ResolvedStop, 0, len(stops))
	dropped := 0
	for _, stop := range stops {
		coords, ok := geo.Resolve(stop)
		if !ok {
			dropped++
			continue
		}
		resolved = append(resolved, domain.ResolvedStop{Stop: stop, Coordinates: coords})
	}
	if dropped > 0 {
		lg := logger.Get()
		lg.Debug().
			Int("dropped", dropped).
			Int("resolved", len(resolved)).
			Msg("stops without coordinates excluded from itinerary")
	}

	groups := tour.Segment(resolved, threshold)

	// Consecutive-pair legs across the filtered, ordered global sequence.
	pairs := make([]CoordinatePair, 0, len(resolved))
	var prev *domain.ResolvedStop
	for gi := range groups {
		for si := range groups[gi].Stops {
			stop := &groups[gi].Stops[si]
			if prev != nil {
				pairs = append(pairs, CoordinatePair{From: prev.Coordinates, To: stop.Coordinates})
			}
			prev = stop
		}
	}

	dist, err := distances.GetOrFetchDistances(ctx, pairs)
	if err != nil {
		// A partially filled distance map is still a valid itinerary.
		lg := logger.Get()
		lg.Warn().Err(err).Msg("distance resolution incomplete")
	}

	metrics.ItineraryBuildsTotal.Inc()
	return &Itinerary{Groups: groups, Distances: dist}, nil
}

package routing

import (
	"context"
	"fmt"

	"tour-route-service/internal/domain"
	"tour-route-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   float64
	Seconds  float64
}

// MockRouteProvider serves canned routes and counts calls, for tests.
type MockRouteProvider struct {
	m     map[string]ports.RouteResult
	Calls int
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[domain.PairKey(l.From, l.To)] = ports.RouteResult{DistanceMeters: l.Meters, DurationSeconds: l.Seconds}
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) Route(ctx context.Context, from, to domain.Coordinates) (ports.RouteResult, error) {
	p.Calls++
	r, ok := p.m[domain.PairKey(from, to)]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing leg %q", domain.PairKey(from, to))
	}

	return r, nil
}

package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"tour-route-service/internal/domain"
	"tour-route-service/internal/platform/metrics"
	"tour-route-service/internal/platform/obs"
	"tour-route-service/internal/ports"
)

// OSRMRouteProvider implements RouteProvider against an OSRM-compatible
// routing service.
//
// Calls are rate-limited with a token bucket so that consecutive cache-miss
// fetches stay under the public API's limit. Shapes are never needed, so
// every request asks for no geometry overview.
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
	limiter *rate.Limiter
}

// NewOSRMRouteProvider builds a provider for the given base URL, emitting at
// most one external call per callInterval.
func NewOSRMRouteProvider(baseURL string, callInterval time.Duration) (*OSRMRouteProvider, error) {
	if baseURL == "" {
		return nil, errors.New("OSRM base URL is empty")
	}
	if callInterval <= 0 {
		callInterval = 200 * time.Millisecond
	}

	provider := &OSRMRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
		limiter: rate.NewLimiter(rate.Every(callInterval), 1),
	}

	return provider, nil
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route fetches the best driving route between two coordinates.
// The OSRM convention puts longitude before latitude in the URL.
func (o *OSRMRouteProvider) Route(ctx context.Context, from, to domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	if err := o.limiter.Wait(ctx); err != nil {
		return ports.RouteResult{}, fmt.Errorf("osrm route: rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		o.baseURL, o.profile, from.Lng, from.Lat, to.Lng, to.Lat)

	start := time.Now()
	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodGet, endpoint)
	})
	metrics.RoutingRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RoutingRequestsTotal.WithLabelValues("error").Inc()
		return ports.RouteResult{}, fmt.Errorf("osrm route request: %w", err)
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.RoutingRequestsTotal.WithLabelValues("error").Inc()
		return ports.RouteResult{}, fmt.Errorf("decode osrm route response: %w", err)
	}

	if decoded.Code != "Ok" {
		metrics.RoutingRequestsTotal.WithLabelValues("error").Inc()
		return ports.RouteResult{}, fmt.Errorf("osrm route: unexpected code %q", decoded.Code)
	}

	if len(decoded.Routes) == 0 {
		metrics.RoutingRequestsTotal.WithLabelValues("error").Inc()
		return ports.RouteResult{}, errors.New("osrm route: no routes in response")
	}

	metrics.RoutingRequestsTotal.WithLabelValues("ok").Inc()
	best := decoded.Routes[0]
	return ports.RouteResult{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
	}, nil
}

package routing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"tour-route-service/internal/domain"
)

func testProvider(server *httptest.Server) *OSRMRouteProvider {
	return &OSRMRouteProvider{
		session: server.Client(),
		baseURL: server.URL,
		profile: "driving",
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

var (
	testFrom = domain.Coordinates{Lat: 52.5200, Lng: 13.4050}
	testTo   = domain.Coordinates{Lat: 48.1351, Lng: 11.5820}
)

func TestOSRMRouteRequestShape(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":584000,"duration":19800}]}`)
	}))
	defer server.Close()

	result, err := testProvider(server).Route(context.Background(), testFrom, testTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Longitude comes before latitude in the coordinate segments.
	wantCoords := "13.405000,52.520000;11.582000,48.135100"
	if !strings.Contains(gotPath, "/route/v1/driving/") || !strings.Contains(gotPath, wantCoords) {
		t.Errorf("request path = %q, want /route/v1/driving/%s", gotPath, wantCoords)
	}
	if !strings.Contains(gotQuery, "overview=false") {
		t.Errorf("query = %q, want overview=false", gotQuery)
	}

	if result.DistanceMeters != 584000 {
		t.Errorf("distance = %f m, want 584000", result.DistanceMeters)
	}
	if result.DurationSeconds != 19800 {
		t.Errorf("duration = %f s, want 19800", result.DurationSeconds)
	}
}

func TestOSRMRouteNonOkCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
	}))
	defer server.Close()

	if _, err := testProvider(server).Route(context.Background(), testFrom, testTo); err == nil {
		t.Fatal("expected error for non-Ok response code")
	} else if !strings.Contains(err.Error(), "NoRoute") {
		t.Errorf("error = %v, want the response code mentioned", err)
	}
}

func TestOSRMRouteEmptyRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":"Ok","routes":[]}`)
	}))
	defer server.Close()

	if _, err := testProvider(server).Route(context.Background(), testFrom, testTo); err == nil {
		t.Fatal("expected error for empty route list")
	}
}

func TestOSRMRouteMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"code":`)
	}))
	defer server.Close()

	if _, err := testProvider(server).Route(context.Background(), testFrom, testTo); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestOSRMRouteServerErrorExhaustsRetries(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := testProvider(server).Route(context.Background(), testFrom, testTo); err == nil {
		t.Fatal("expected error after retries are exhausted")
	}
	if hits != 3 {
		t.Errorf("server hits = %d, want 3 (initial attempt plus two retries)", hits)
	}
}

func TestOSRMRouteClientErrorDoesNotRetry(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	if _, err := testProvider(server).Route(context.Background(), testFrom, testTo); err == nil {
		t.Fatal("expected error for HTTP 400")
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (client errors are not retried)", hits)
	}
}

func TestNewOSRMRouteProviderValidation(t *testing.T) {
	if _, err := NewOSRMRouteProvider("", time.Second); err == nil {
		t.Fatal("expected error for empty base URL")
	}

	p, err := NewOSRMRouteProvider("https://router.example.com", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.limiter == nil {
		t.Fatal("limiter not configured")
	}
}

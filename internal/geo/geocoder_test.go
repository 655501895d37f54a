package geo

import (
	"testing"
	"time"

	"tour-route-service/internal/domain"
)

func TestResolveStoredCoordinatesWin(t *testing.T) {
	lat, lng := 48.9999, 11.1111
	stop := domain.Stop{
		Name:     "München", // table would say 48.1351, 11.5820
		StartsAt: time.Now(),
		Lat:      &lat,
		Lng:      &lng,
	}

	coords, ok := Resolve(stop)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if coords.Lat != lat || coords.Lng != lng {
		t.Errorf("got %v, want stored coordinates (%v, %v)", coords, lat, lng)
	}
}

func TestResolveCaseInsensitiveWithRegionSuffix(t *testing.T) {
	stop := domain.Stop{Name: "münchen, Bayern"}

	coords, ok := Resolve(stop)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if coords.Lat != 48.1351 || coords.Lng != 11.5820 {
		t.Errorf("got %v, want München coordinates", coords)
	}
}

func TestResolveBidirectionalSubstring(t *testing.T) {
	// Stop name contains the table key.
	coords, ok := Resolve(domain.Stop{Name: "Berlin-Mitte"})
	if !ok {
		t.Fatal("expected 'Berlin-Mitte' to match 'Berlin'")
	}
	if coords.Lat != 52.5200 {
		t.Errorf("got %v, want Berlin coordinates", coords)
	}

	// Table key contains the stop name.
	if _, ok := Resolve(domain.Stop{Name: "Münch"}); !ok {
		t.Error("expected 'Münch' to match 'München'")
	}
}

func TestResolveUnknownPlace(t *testing.T) {
	if _, ok := Resolve(domain.Stop{Name: "Atlantis"}); ok {
		t.Error("expected unknown place to stay unresolved")
	}
	if _, ok := Resolve(domain.Stop{Name: "   "}); ok {
		t.Error("expected blank name to stay unresolved")
	}
}

func TestResolveFirstTableEntryWins(t *testing.T) {
	// "Halle" is a substring of no earlier entry, but a name like "Linz"
	// must not accidentally match "Berlin" etc.; check table order is
	// respected for an ambiguous-ish prefix.
	coords, ok := Resolve(domain.Stop{Name: "Halle (Saale), Sachsen-Anhalt"})
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if coords.Lat != 51.4970 {
		t.Errorf("got %v, want Halle coordinates", coords)
	}
}

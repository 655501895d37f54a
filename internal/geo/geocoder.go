// Package geo resolves stop locations to coordinates without network calls.
//
// Stored coordinates on the stop record always win. Otherwise the location
// name is matched against the static Places table. A failed resolution is not
// an error; the stop is simply excluded from geography-dependent output.
package geo

import (
	"strings"

	"tour-route-service/internal/domain"
)

// Resolve returns the coordinates for a stop, or ok=false when the stop
// cannot be placed on the map.
//
// Matching is case-insensitive and bidirectional: the stop name may contain
// a table key ("Berlin-Mitte" matches "Berlin") or a table key may contain
// the stop name ("München" matches "Münch"). Only the portion of the name
// before the first comma is considered, so region suffixes never interfere.
func Resolve(stop domain.Stop) (domain.Coordinates, bool) {
	if stop.Lat != nil && stop.Lng != nil {
		return domain.Coordinates{Lat: *stop.Lat, Lng: *stop.Lng}, true
	}

	name := stop.Name
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return domain.Coordinates{}, false
	}

	for _, p := range Places {
		key := strings.ToLower(p.Name)
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return p.Coords, true
		}
	}

	return domain.Coordinates{}, false
}

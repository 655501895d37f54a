package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"tour-route-service/internal/api/dto"
	"tour-route-service/internal/domain"
	"tour-route-service/internal/ports"
	"tour-route-service/internal/services"
	"tour-route-service/pkg/logger"
)

var validate = validator.New()

// ItineraryHandler builds the enriched tour itinerary for the map view.
type ItineraryHandler struct {
	Repo           ports.StopRepository
	Distances      *services.DistanceService
	DefaultGapDays int
}

// Build runs the itinerary pipeline over all stops.
// Stops without resolvable coordinates are excluded here but still appear in
// the plain stop listing.
func (h *ItineraryHandler) Build(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := dto.ItineraryQuery{GapDays: h.DefaultGapDays}
	if raw := r.URL.Query().Get("gap_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "gap_days must be an integer")
			return
		}
		q.GapDays = n
	}
	if err := validate.Struct(q); err != nil {
		writeError(w, r, http.StatusBadRequest, "gap_days must be between 1 and 30")
		return
	}

	req := services.BuildItineraryRequest{GapThresholdDays: q.GapDays}
	itin, err := services.BuildItinerary(r.Context(), req, h.Repo, h.Distances)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("build itinerary failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(itin))
}

func toItineraryResponse(itin *services.Itinerary) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		Groups:    make([]dto.TourGroupResponse, 0, len(itin.Groups)),
		Distances: make(map[string]dto.DistanceResponse, len(itin.Distances)),
	}

	for _, g := range itin.Groups {
		stops := make([]dto.ResolvedStopResponse, 0, len(g.Stops))
		for _, s := range g.Stops {
			stops = append(stops, dto.ResolvedStopResponse{
				StopID:        s.StopID,
				Name:          s.Name,
				Venue:         s.Venue,
				StartsAt:      s.StartsAt,
				EndsAt:        s.EndsAt,
				Lat:           s.Coordinates.Lat,
				Lng:           s.Coordinates.Lng,
				SequenceIndex: s.SequenceIndex,
			})
		}

		res.Groups = append(res.Groups, dto.TourGroupResponse{
			TourNumber: g.TourNumber,
			Color:      domain.TourPalette[g.PaletteSlot],
			StartsOn:   g.StartsOn,
			EndsOn:     g.EndsOn,
			Stops:      stops,
		})
	}

	for key, d := range itin.Distances {
		res.Distances[key] = dto.DistanceResponse{
			DistanceKm:  d.DistanceKm,
			DurationMin: d.DurationMin,
		}
	}

	return res
}

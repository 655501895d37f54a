package handlers

import (
	"net/http"

	"tour-route-service/internal/api/dto"
	"tour-route-service/internal/ports"
	"tour-route-service/pkg/logger"
)

// StopHandler exposes read-only stop retrieval endpoints.
type StopHandler struct {
	Repo ports.StopRepository
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stops, err := h.Repo.ListStops(r.Context())
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("list stops failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			StopID:   s.StopID,
			Name:     s.Name,
			Region:   s.Region,
			Venue:    s.Venue,
			StartsAt: s.StartsAt,
			EndsAt:   s.EndsAt,
			Lat:      s.Lat,
			Lng:      s.Lng,
			Source:   string(s.Source),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

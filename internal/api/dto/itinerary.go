package dto

import "time"

// ItineraryQuery holds validated query parameters for the itinerary build.
type ItineraryQuery struct {
	GapDays int `validate:"min=1,max=30"`
}

type ResolvedStopResponse struct {
	StopID        int        `json:"stop_id"`
	Name          string     `json:"name"`
	Venue         string     `json:"venue,omitempty"`
	StartsAt      time.Time  `json:"starts_at"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	Lat           float64    `json:"lat"`
	Lng           float64    `json:"lng"`
	SequenceIndex int        `json:"sequence_index"`
}

type TourGroupResponse struct {
	TourNumber int                    `json:"tour_number"`
	Color      string                 `json:"color"`
	StartsOn   time.Time              `json:"starts_on"`
	EndsOn     time.Time              `json:"ends_on"`
	Stops      []ResolvedStopResponse `json:"stops"`
}

type DistanceResponse struct {
	DistanceKm  int `json:"distance_km"`
	DurationMin int `json:"duration_min"`
}

type ItineraryResponse struct {
	Groups    []TourGroupResponse         `json:"groups"`
	Distances map[string]DistanceResponse `json:"distances"`
}

package dto

import "time"

type StopResponse struct {
	StopID   int        `json:"stop_id"`
	Name     string     `json:"name"`
	Region   string     `json:"region,omitempty"`
	Venue    string     `json:"venue,omitempty"`
	StartsAt time.Time  `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Lat      *float64   `json:"lat,omitempty"`
	Lng      *float64   `json:"lng,omitempty"`
	Source   string     `json:"source"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}

package domain

import "time"

// A Stop augmented with everything the itinerary build derives for it:
// resolved coordinates, a global sequence index across all tours, the tour
// it belongs to and the palette slot of that tour.
// ResolvedStops are computed per itinerary build and never persisted.
type ResolvedStop struct {
	Stop
	Coordinates   Coordinates
	SequenceIndex int // 0-based, continuous across all tour groups
	TourNumber    int // 1-based, chronological
	PaletteSlot   int
}

// An ordered, contiguous run of stops belonging to one tour.
// Between any two chronologically adjacent member stops the calendar-day gap
// is at most the segmentation threshold; the gap to the neighboring tours
// exceeds it.
type TourGroup struct {
	TourNumber  int
	PaletteSlot int
	Stops       []ResolvedStop
	StartsOn    time.Time
	EndsOn      time.Time
}

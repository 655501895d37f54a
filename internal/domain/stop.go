package domain

import "time"

// Origin of a stop record.
type StopSource string

const (
	SourceManual  StopSource = "manual"
	SourceImport  StopSource = "import"
	SourceUnknown StopSource = "unknown"
)

// Represents a single scheduled appearance of the production.
// A Stop is owned by the calendar data store; this service reads it and
// derives itineraries from it, but never mutates it.
type Stop struct {
	StopID   int
	Name     string // display location, e.g. "München, Bayern"
	Region   string
	Venue    string
	StartsAt time.Time
	EndsAt   *time.Time
	Lat      *float64
	Lng      *float64
	Source   StopSource
}

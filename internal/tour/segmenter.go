// Package tour partitions a chronological stop list into discrete tours.
package tour

import (
	"slices"
	"time"

	"tour-route-service/internal/domain"
)

// DefaultGapThresholdDays is the maximum calendar-day gap between two
// consecutive stops of the same tour.
const DefaultGapThresholdDays = 2

// Segment partitions stops into tour groups using a maximum-gap rule.
//
// A new group starts whenever the calendar-day difference between two
// consecutive stops exceeds gapThresholdDays. The difference counts calendar
// days, not elapsed hours: a stop at 23:00 followed by one at 01:00 two
// calendar days later is a 2-day gap even though only 26 hours elapsed.
//
// Each stop is assigned a 0-based global sequence index in group-then-member
// order, its 1-based tour number, and the tour's cyclic palette slot.
//
// Callers are expected to pass stops sorted ascending by start time; Segment
// sorts a copy anyway (stable, O(n log n)) so an unsorted caller cannot
// corrupt the grouping invariants. Segment is pure: it never mutates its
// input and holds no state between calls.
func Segment(stops []domain.ResolvedStop, gapThresholdDays int) []domain.TourGroup {
	if len(stops) == 0 {
		return []domain.TourGroup{}
	}
	if gapThresholdDays < 0 {
		gapThresholdDays = DefaultGapThresholdDays
	}

	ordered := slices.Clone(stops)
	slices.SortStableFunc(ordered, func(a, b domain.ResolvedStop) int {
		return a.StartsAt.Compare(b.StartsAt)
	})

	groups := []domain.TourGroup{}
	current := newGroup(1)
	seq := 0

	for i, stop := range ordered {
		if i > 0 {
			gap := calendarDays(ordered[i-1].StartsAt, stop.StartsAt)
			if gap > gapThresholdDays {
				groups = append(groups, closeGroup(current))
				current = newGroup(current.TourNumber + 1)
			}
		}

		stop.SequenceIndex = seq
		stop.TourNumber = current.TourNumber
		stop.PaletteSlot = current.PaletteSlot
		current.Stops = append(current.Stops, stop)
		seq++
	}

	groups = append(groups, closeGroup(current))
	return groups
}

func newGroup(tourNumber int) domain.TourGroup {
	return domain.TourGroup{
		TourNumber:  tourNumber,
		PaletteSlot: domain.PaletteSlot(tourNumber, len(domain.TourPalette)),
	}
}

// closeGroup derives the group's start and end dates from its members.
func closeGroup(g domain.TourGroup) domain.TourGroup {
	if len(g.Stops) == 0 {
		return g
	}

	first := g.Stops[0]
	last := g.Stops[len(g.Stops)-1]

	g.StartsOn = first.StartsAt
	g.EndsOn = last.StartsAt
	if last.EndsAt != nil && last.EndsAt.After(g.EndsOn) {
		g.EndsOn = *last.EndsAt
	}

	return g
}

// calendarDays returns the whole-day difference between the calendar dates
// of a and b, evaluated in UTC.
func calendarDays(a, b time.Time) int {
	au := a.UTC()
	bu := b.UTC()
	ad := time.Date(au.Year(), au.Month(), au.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(bu.Year(), bu.Month(), bu.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

package tour

import (
	"reflect"
	"testing"
	"time"

	"tour-route-service/internal/domain"
)

func stopAt(id int, name string, startsAt time.Time) domain.ResolvedStop {
	return domain.ResolvedStop{
		Stop: domain.Stop{StopID: id, Name: name, StartsAt: startsAt},
	}
}

func day(d int) time.Time {
	return time.Date(2026, 1, d, 19, 30, 0, 0, time.UTC)
}

func TestSegmentGapRule(t *testing.T) {
	stops := []domain.ResolvedStop{
		stopAt(1, "Berlin", day(1)),
		stopAt(2, "Hamburg", day(2)),
		stopAt(3, "München", day(10)),
	}

	groups := Segment(stops, 2)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Stops) != 2 {
		t.Fatalf("expected 2 stops in tour 1, got %d", len(groups[0].Stops))
	}
	if len(groups[1].Stops) != 1 {
		t.Fatalf("expected 1 stop in tour 2, got %d", len(groups[1].Stops))
	}

	if groups[0].TourNumber != 1 || groups[1].TourNumber != 2 {
		t.Errorf("tour numbers = %d, %d; want 1, 2", groups[0].TourNumber, groups[1].TourNumber)
	}

	var indices []int
	for _, g := range groups {
		for _, s := range g.Stops {
			indices = append(indices, s.SequenceIndex)
		}
	}
	if !reflect.DeepEqual(indices, []int{0, 1, 2}) {
		t.Errorf("sequence indices = %v, want [0 1 2]", indices)
	}
}

// A stop at 23:00 followed by one at 01:00 two calendar days later is a
// 2-day gap even though only 26 hours elapsed.
func TestSegmentCalendarDaysNotElapsedHours(t *testing.T) {
	late := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	early := time.Date(2026, 3, 3, 1, 0, 0, 0, time.UTC)

	stops := []domain.ResolvedStop{
		stopAt(1, "Köln", late),
		stopAt(2, "Bonn", early),
	}

	// Gap is exactly 2 days: threshold 2 keeps both in one tour.
	groups := Segment(stops, 2)
	if len(groups) != 1 {
		t.Fatalf("threshold 2: expected 1 group, got %d", len(groups))
	}

	// Threshold 1 splits them.
	groups = Segment(stops, 1)
	if len(groups) != 2 {
		t.Fatalf("threshold 1: expected 2 groups, got %d", len(groups))
	}
}

func TestSegmentEdgeCases(t *testing.T) {
	if groups := Segment(nil, 2); len(groups) != 0 {
		t.Errorf("empty input: expected 0 groups, got %d", len(groups))
	}

	single := []domain.ResolvedStop{stopAt(1, "Berlin", day(1))}
	groups := Segment(single, 2)
	if len(groups) != 1 || len(groups[0].Stops) != 1 {
		t.Fatalf("single stop: expected 1 group of 1, got %v", groups)
	}
	if groups[0].Stops[0].SequenceIndex != 0 {
		t.Errorf("single stop index = %d, want 0", groups[0].Stops[0].SequenceIndex)
	}

	dense := []domain.ResolvedStop{
		stopAt(1, "Berlin", day(1)),
		stopAt(2, "Hamburg", day(3)),
		stopAt(3, "Bremen", day(5)),
	}
	if groups := Segment(dense, 2); len(groups) != 1 {
		t.Errorf("all gaps <= threshold: expected 1 group, got %d", len(groups))
	}
}

func TestSegmentDeterminism(t *testing.T) {
	stops := []domain.ResolvedStop{
		stopAt(1, "Berlin", day(1)),
		stopAt(2, "Hamburg", day(2)),
		stopAt(3, "München", day(10)),
		stopAt(4, "Stuttgart", day(11)),
		stopAt(5, "Wien", day(20)),
	}

	first := Segment(stops, 2)
	second := Segment(stops, 2)

	if !reflect.DeepEqual(first, second) {
		t.Error("segmenting twice produced different results")
	}
}

func TestSegmentGapInvariant(t *testing.T) {
	stops := []domain.ResolvedStop{
		stopAt(1, "Berlin", day(1)),
		stopAt(2, "Hamburg", day(3)),
		stopAt(3, "München", day(9)),
		stopAt(4, "Stuttgart", day(10)),
		stopAt(5, "Wien", day(20)),
	}

	const threshold = 2
	groups := Segment(stops, threshold)

	for gi, g := range groups {
		for i := 1; i < len(g.Stops); i++ {
			gap := calendarDays(g.Stops[i-1].StartsAt, g.Stops[i].StartsAt)
			if gap > threshold {
				t.Errorf("group %d: internal gap %d exceeds threshold", gi+1, gap)
			}
		}

		if gi == 0 {
			continue
		}
		prev := groups[gi-1].Stops[len(groups[gi-1].Stops)-1]
		gap := calendarDays(prev.StartsAt, g.Stops[0].StartsAt)
		if gap <= threshold {
			t.Errorf("gap between group %d and %d is %d, must exceed threshold", gi, gi+1, gap)
		}
	}
}

func TestSegmentPaletteSlots(t *testing.T) {
	// Enough sparse stops to wrap the palette.
	n := len(domain.TourPalette) + 2
	stops := make([]domain.ResolvedStop, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, stopAt(i+1, "Berlin", day(1).AddDate(0, 0, i*10)))
	}

	groups := Segment(stops, 2)
	if len(groups) != n {
		t.Fatalf("expected %d groups, got %d", n, len(groups))
	}

	for _, g := range groups {
		want := (g.TourNumber - 1) % len(domain.TourPalette)
		if g.PaletteSlot != want {
			t.Errorf("tour %d palette slot = %d, want %d", g.TourNumber, g.PaletteSlot, want)
		}
	}
}

func TestSegmentSortsUnsortedInput(t *testing.T) {
	stops := []domain.ResolvedStop{
		stopAt(2, "Hamburg", day(2)),
		stopAt(1, "Berlin", day(1)),
	}

	groups := Segment(stops, 2)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Stops[0].StopID != 1 {
		t.Errorf("first stop = %d, want 1 (chronological order)", groups[0].Stops[0].StopID)
	}

	// Input slice must not be reordered.
	if stops[0].StopID != 2 {
		t.Error("Segment mutated its input")
	}
}

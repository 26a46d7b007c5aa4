package timeline

import (
	"testing"
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
)

func TestDefaultRangePadding(t *testing.T) {
	p := models.Project{
		StartDate: date(2025, time.March, 10),
		EndDate:   date(2025, time.April, 10),
	}
	r := DefaultRange(p, GranularityWeek)
	if !r.Start.Equal(date(2025, time.March, 3)) {
		t.Fatalf("padded start = %v", r.Start)
	}
	if !r.End.Equal(date(2025, time.April, 17)) {
		t.Fatalf("padded end = %v", r.End)
	}

	day := DefaultRange(p, GranularityDay)
	if DaysBetween(day.Start, p.StartDate) != 3 {
		t.Fatalf("day-zoom pad = %d, want 3", DaysBetween(day.Start, p.StartDate))
	}
	quarter := DefaultRange(p, GranularityQuarter)
	if DaysBetween(quarter.Start, p.StartDate) != 30 {
		t.Fatalf("quarter-zoom pad = %d, want 30", DaysBetween(quarter.Start, p.StartDate))
	}
}

func TestDefaultRangeDegenerateProject(t *testing.T) {
	r := DefaultRange(models.Project{}, GranularityWeek)
	if r.Days() != 29 {
		t.Fatalf("fallback window spans %d days, want 29", r.Days())
	}
	if !r.Contains(time.Now()) {
		t.Fatalf("fallback window should contain today")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: date(2025, time.May, 1), End: date(2025, time.May, 31)}
	if !r.Contains(date(2025, time.May, 1)) || !r.Contains(date(2025, time.May, 31)) {
		t.Fatalf("range must include both endpoints")
	}
	if r.Contains(date(2025, time.April, 30)) || r.Contains(date(2025, time.June, 1)) {
		t.Fatalf("range must exclude outside days")
	}
}

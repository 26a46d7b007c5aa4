package timeline

import (
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
)

// Range is the visible [Start, End] date window, inclusive at both ends.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the range.
func (r Range) Days() int {
	return InclusiveDays(r.Start, r.End)
}

// Contains reports whether a date falls inside the range.
func (r Range) Contains(d time.Time) bool {
	day := DayStart(d)
	return !day.Before(DayStart(r.Start)) && !day.After(DayStart(r.End))
}

// paddingDays is the zoom-dependent margin added on each side of the
// project dates when deriving the default window.
func paddingDays(g Granularity) int {
	switch g {
	case GranularityDay:
		return 3
	case GranularityWeek:
		return 7
	case GranularityMonth:
		return 15
	default:
		return 30
	}
}

// DefaultRange derives the visible window from the project dates, padded
// by a zoom-dependent margin. Degenerate project dates yield a window
// around today rather than a zero-width range.
func DefaultRange(p models.Project, g Granularity) Range {
	start, end := DayStart(p.StartDate), DayStart(p.EndDate)
	if p.StartDate.IsZero() || p.EndDate.IsZero() || end.Before(start) {
		today := DayStart(time.Now())
		return Range{Start: AddDays(today, -14), End: AddDays(today, 14)}
	}
	pad := paddingDays(g)
	return Range{Start: AddDays(start, -pad), End: AddDays(end, pad)}
}

package timeline

import (
	"strings"
	"time"
)

// Granularity is the active zoom level, controlling tick spacing and
// snap-to-grid quantization.
type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityWeek
	GranularityMonth
	GranularityQuarter
)

func (g Granularity) String() string {
	switch g {
	case GranularityWeek:
		return "week"
	case GranularityMonth:
		return "month"
	case GranularityQuarter:
		return "quarter"
	default:
		return "day"
	}
}

// ParseGranularity maps a stored setting value back to a Granularity.
// Unknown values fall back to week view.
func ParseGranularity(s string) Granularity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return GranularityDay
	case "month":
		return GranularityMonth
	case "quarter":
		return GranularityQuarter
	default:
		return GranularityWeek
	}
}

// SnapToGrid quantizes a date to the start of its enclosing day, week
// (Monday-start), month or quarter.
func SnapToGrid(date time.Time, g Granularity) time.Time {
	d := DayStart(date)
	switch g {
	case GranularityWeek:
		// Monday-start: Weekday() is 0 for Sunday.
		offset := (int(d.Weekday()) + 6) % 7
		return AddDays(d, -offset)
	case GranularityMonth:
		y, m, _ := d.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	case GranularityQuarter:
		y, m, _ := d.Date()
		qm := time.Month(((int(m)-1)/3)*3 + 1)
		return time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// NextBoundary returns the start of the unit after the one containing date.
func NextBoundary(date time.Time, g Granularity) time.Time {
	start := SnapToGrid(date, g)
	switch g {
	case GranularityWeek:
		return AddDays(start, 7)
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	case GranularityQuarter:
		return start.AddDate(0, 3, 0)
	default:
		return AddDays(start, 1)
	}
}

// Package timeline converts between calendar dates and pixel offsets.
// All arithmetic is calendar-day based, never raw millisecond division,
// so mappings stay stable across DST transitions.
package timeline

import (
	"time"

	"github.com/akyairhashvil/gantterm/internal/config"
)

// DayStart normalizes a timestamp to midnight UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by n whole calendar days.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)) / (24 * time.Hour))
}

// InclusiveDays returns the day count of [start, end] counting both ends.
// A zero-or-negative span is treated as a single day.
func InclusiveDays(start, end time.Time) int {
	days := DaysBetween(start, end) + 1
	if days < 1 {
		return 1
	}
	return days
}

// PixelsPerDay divides the available width across the inclusive day count
// of the range, clamped to [MinPixelsPerDay, MaxPixelsPerDay].
func PixelsPerDay(containerWidth float64, rangeStart, rangeEnd time.Time) float64 {
	days := InclusiveDays(rangeStart, rangeEnd)
	return ClampPixelsPerDay(containerWidth / float64(days))
}

// ClampPixelsPerDay bounds a requested scale to the supported zoom range.
func ClampPixelsPerDay(ppd float64) float64 {
	if ppd < config.MinPixelsPerDay {
		return config.MinPixelsPerDay
	}
	if ppd > config.MaxPixelsPerDay {
		return config.MaxPixelsPerDay
	}
	return ppd
}

// DateToX maps a date to its horizontal pixel offset from the range start.
func DateToX(date, rangeStart time.Time, pixelsPerDay float64) float64 {
	return float64(DaysBetween(rangeStart, date)) * pixelsPerDay
}

// XToDate is the inverse of DateToX, flooring to whole days.
func XToDate(x float64, rangeStart time.Time, pixelsPerDay float64) time.Time {
	if pixelsPerDay <= 0 {
		return DayStart(rangeStart)
	}
	days := int(x / pixelsPerDay)
	if x < 0 && x != float64(days)*pixelsPerDay {
		days-- // floor, not truncate, for negative offsets
	}
	return AddDays(rangeStart, days)
}

// BarWidth returns the pixel width of a bar spanning [start, end]
// inclusive, floored at MinBarWidth so single-day tasks stay clickable.
func BarWidth(start, end time.Time, pixelsPerDay float64) float64 {
	w := float64(InclusiveDays(start, end)) * pixelsPerDay
	if w < config.MinBarWidth {
		return config.MinBarWidth
	}
	return w
}

// TodayX returns the pixel offset of the current day, or false when today
// falls outside [rangeStart, rangeEnd].
func TodayX(rangeStart, rangeEnd time.Time, pixelsPerDay float64) (float64, bool) {
	return TodayXAt(time.Now(), rangeStart, rangeEnd, pixelsPerDay)
}

// TodayXAt is TodayX with an explicit clock, for callers and tests that
// control "now".
func TodayXAt(now, rangeStart, rangeEnd time.Time, pixelsPerDay float64) (float64, bool) {
	today := DayStart(now)
	if today.Before(DayStart(rangeStart)) || today.After(DayStart(rangeEnd)) {
		return 0, false
	}
	return DateToX(today, rangeStart, pixelsPerDay), true
}

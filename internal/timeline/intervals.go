package timeline

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/gantterm/internal/config"
)

// Tick is one ruler/grid interval: a unit boundary with its clipped pixel
// position and width. Label is empty when the tick is too narrow to carry
// legible text; the boundary line still renders.
type Tick struct {
	Date  time.Time
	X     float64
	Width float64
	Label string
}

func tickLabel(d time.Time, g Granularity) string {
	switch g {
	case GranularityDay:
		return d.Format("2")
	case GranularityWeek:
		return d.Format("Jan 2")
	case GranularityMonth:
		return d.Format("Jan 2006")
	default:
		q := (int(d.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", q, d.Year())
	}
}

// Ticks produces the ordered, non-overlapping tick sequence covering
// exactly [rangeStart, rangeEnd]. Ticks partially outside the range are
// clipped: positioned at max(x, 0) and reporting only their visible width.
func Ticks(rangeStart, rangeEnd time.Time, g Granularity, pixelsPerDay float64) []Tick {
	start := DayStart(rangeStart)
	end := DayStart(rangeEnd)
	if end.Before(start) {
		end = start
	}
	rangeWidth := float64(InclusiveDays(start, end)) * pixelsPerDay

	var ticks []Tick
	for cur := SnapToGrid(start, g); !cur.After(end); cur = NextBoundary(cur, g) {
		x := DateToX(cur, start, pixelsPerDay)
		next := NextBoundary(cur, g)
		xEnd := DateToX(next, start, pixelsPerDay)

		clippedX := x
		if clippedX < 0 {
			clippedX = 0
		}
		if xEnd > rangeWidth {
			xEnd = rangeWidth
		}
		width := xEnd - clippedX
		if width <= 0 {
			continue
		}

		label := tickLabel(cur, g)
		if width < config.MinTickLabelWidth {
			label = ""
		}
		ticks = append(ticks, Tick{Date: cur, X: clippedX, Width: width, Label: label})
	}
	return ticks
}

// Run is a merged horizontal span of contiguous days, used for weekend
// tinting: two adjacent weekend days paint as one rectangle.
type Run struct {
	Start time.Time
	Days  int
	X     float64
	Width float64
}

// WeekendRuns returns the contiguous Saturday/Sunday runs inside the
// range, each merged into a single span.
func WeekendRuns(rangeStart, rangeEnd time.Time, pixelsPerDay float64) []Run {
	start := DayStart(rangeStart)
	end := DayStart(rangeEnd)

	var runs []Run
	var open *Run
	for d := start; !d.After(end); d = AddDays(d, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			if open == nil {
				open = &Run{Start: d, X: DateToX(d, start, pixelsPerDay)}
			}
			open.Days++
		} else if open != nil {
			open.Width = float64(open.Days) * pixelsPerDay
			runs = append(runs, *open)
			open = nil
		}
	}
	if open != nil {
		open.Width = float64(open.Days) * pixelsPerDay
		runs = append(runs, *open)
	}
	return runs
}

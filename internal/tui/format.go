package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/gantterm/internal/timeline"
)

// FormatRange renders a visible window like "Jan 6 - Feb 19 2025".
func FormatRange(start, end time.Time) string {
	if start.Year() != end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2 2006"), end.Format("Jan 2 2006"))
	}
	return fmt.Sprintf("%s - %s %d", start.Format("Jan 2"), end.Format("Jan 2"), end.Year())
}

// FormatSpan renders a task's dates with its inclusive day count.
func FormatSpan(start, end time.Time) string {
	days := timeline.InclusiveDays(start, end)
	if days == 1 {
		return fmt.Sprintf("%s (1d)", start.Format("Jan 2"))
	}
	return fmt.Sprintf("%s (%dd)", FormatRange(start, end), days)
}

// FormatPercent renders a 0..1 fraction as a whole percentage.
func FormatPercent(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return fmt.Sprintf("%d%%", int(p*100+0.5))
}

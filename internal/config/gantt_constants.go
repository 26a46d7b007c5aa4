package config

// Timeline geometry.
const (
	// MinPixelsPerDay keeps arbitrarily long ranges interactable instead of
	// collapsing to zero-width days.
	MinPixelsPerDay = 2.0

	// MaxPixelsPerDay caps the scale for very short ranges (a 1-day project
	// in a wide container would otherwise produce useless day widths).
	MaxPixelsPerDay = 200.0

	// MinBarWidth is the smallest rendered task bar, so zero/one-day tasks
	// stay clickable.
	MinBarWidth = 20.0

	// RowHeight is the vertical pitch of one display row.
	RowHeight = 32.0

	// BarPadding is the vertical inset of a task bar within its row.
	BarPadding = 6.0

	// HeaderHeight is the height of the two-row ruler (months + sub-ticks).
	HeaderHeight = 48.0
)

// Legibility thresholds.
const (
	// MinTickLabelWidth suppresses tick text narrower than this; the
	// boundary line still renders.
	MinTickLabelWidth = 28.0

	// MinHighlightLabelWidth suppresses highlight labels on narrow bands.
	MinHighlightLabelWidth = 40.0

	// MinDayLinePixels suppresses per-day grid lines below this scale to
	// avoid visual noise.
	MinDayLinePixels = 14.0
)

// Sidebar layout.
const (
	DefaultSidebarWidth = 28
	MinSidebarWidth     = 16
	MaxSidebarWidth     = 60
)

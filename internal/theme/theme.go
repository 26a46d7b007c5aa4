// Package theme supplies named presets that parameterize the compositor
// without touching its geometry.
package theme

import (
	"sort"

	"github.com/akyairhashvil/gantterm/internal/models"
)

// ProgressStyle selects how a bar's completion fraction is drawn.
type ProgressStyle string

const (
	ProgressOverlay ProgressStyle = "overlay" // darker tint over the done fraction
	ProgressStripe  ProgressStyle = "stripe"  // thin stripe along the bar bottom
	ProgressFill    ProgressStyle = "fill"    // fill-from-left in a stronger shade
)

// Config is a resolved theme: colours and bar styling for every layer.
// All colours are hex strings so every backend (TUI, SVG, PDF) reads the
// same values.
type Config struct {
	Name string

	HeaderBackground    string
	HeaderForeground    string
	SubHeaderForeground string
	CanvasBackground    string
	SidebarBackground   string

	GridLineWeek  string
	GridLineMonth string
	RowDivider    string
	CategoryEdge  string

	WeekendTint    string
	WeekendOpacity float64
	TodayTint      string
	TodayOpacity   float64
	TodayLine      string

	BandOpacity      float64
	HighlightOpacity float64 // default when a highlight carries none

	// Palette is indexed cyclically by deliverable position when no
	// explicit colour is set.
	Palette []string

	StatusColours map[models.TaskStatus]string

	BarCornerRadius float64
	BarShadow       int
	BarLabels       bool
	Progress        ProgressStyle

	// Default grid settings; the view can override per session.
	ShowWeekends bool
	ShowToday    bool
	ShowDayLines bool
}

// StatusColour returns the fallback colour for a task with no explicit or
// category colour.
func (c Config) StatusColour(s models.TaskStatus) string {
	if col, ok := c.StatusColours[s]; ok {
		return col
	}
	return c.StatusColours[models.StatusNotStarted]
}

var defaultStatusColours = map[models.TaskStatus]string{
	models.StatusNotStarted:  "#94a3b8",
	models.StatusInProgress:  "#3b82f6",
	models.StatusUnderReview: "#a855f7",
	models.StatusBlocked:     "#ef4444",
	models.StatusCompleted:   "#22c55e",
}

var presets = map[string]Config{
	"default": {
		Name:                "Default",
		HeaderBackground:    "#1e293b",
		HeaderForeground:    "#f1f5f9",
		SubHeaderForeground: "#94a3b8",
		CanvasBackground:    "#0f172a",
		SidebarBackground:   "#1e293b",
		GridLineWeek:        "#334155",
		GridLineMonth:       "#475569",
		RowDivider:          "#1e293b",
		CategoryEdge:        "#475569",
		WeekendTint:         "#1e293b",
		WeekendOpacity:      0.5,
		TodayTint:           "#422006",
		TodayOpacity:        0.35,
		TodayLine:           "#f59e0b",
		BandOpacity:         0.08,
		HighlightOpacity:    0.25,
		Palette: []string{
			"#38bdf8", "#a78bfa", "#34d399", "#fb923c",
			"#f472b6", "#facc15", "#2dd4bf", "#f87171",
		},
		StatusColours:   defaultStatusColours,
		BarCornerRadius: 3,
		BarShadow:       1,
		BarLabels:       true,
		Progress:        ProgressOverlay,
		ShowWeekends:    true,
		ShowToday:       true,
		ShowDayLines:    true,
	},
	"paper": {
		Name:                "Paper",
		HeaderBackground:    "#f8fafc",
		HeaderForeground:    "#0f172a",
		SubHeaderForeground: "#64748b",
		CanvasBackground:    "#ffffff",
		SidebarBackground:   "#f1f5f9",
		GridLineWeek:        "#e2e8f0",
		GridLineMonth:       "#cbd5e1",
		RowDivider:          "#f1f5f9",
		CategoryEdge:        "#94a3b8",
		WeekendTint:         "#f1f5f9",
		WeekendOpacity:      0.8,
		TodayTint:           "#fef3c7",
		TodayOpacity:        0.5,
		TodayLine:           "#d97706",
		BandOpacity:         0.06,
		HighlightOpacity:    0.2,
		Palette: []string{
			"#0284c7", "#7c3aed", "#059669", "#ea580c",
			"#db2777", "#ca8a04", "#0d9488", "#dc2626",
		},
		StatusColours:   defaultStatusColours,
		BarCornerRadius: 2,
		BarShadow:       0,
		BarLabels:       true,
		Progress:        ProgressFill,
		ShowWeekends:    true,
		ShowToday:       true,
		ShowDayLines:    false,
	},
	"midnight": {
		Name:                "Midnight",
		HeaderBackground:    "#09090b",
		HeaderForeground:    "#e4e4e7",
		SubHeaderForeground: "#71717a",
		CanvasBackground:    "#09090b",
		SidebarBackground:   "#18181b",
		GridLineWeek:        "#27272a",
		GridLineMonth:       "#3f3f46",
		RowDivider:          "#18181b",
		CategoryEdge:        "#52525b",
		WeekendTint:         "#18181b",
		WeekendOpacity:      0.6,
		TodayTint:           "#172554",
		TodayOpacity:        0.4,
		TodayLine:           "#60a5fa",
		BandOpacity:         0.1,
		HighlightOpacity:    0.3,
		Palette: []string{
			"#22d3ee", "#c084fc", "#4ade80", "#fbbf24",
			"#fb7185", "#818cf8", "#5eead4", "#fca5a5",
		},
		StatusColours:   defaultStatusColours,
		BarCornerRadius: 0,
		BarShadow:       2,
		BarLabels:       false,
		Progress:        ProgressStripe,
		ShowWeekends:    false,
		ShowToday:       true,
		ShowDayLines:    true,
	},
}

// Resolve looks up a preset by name. Unknown names fall back to the
// default preset rather than failing.
func Resolve(name string) Config {
	if c, ok := presets[name]; ok {
		return c
	}
	return presets["default"]
}

// Names lists the available presets in stable order, for the picker.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/database"
	"github.com/akyairhashvil/gantterm/internal/gesture"
	"github.com/akyairhashvil/gantterm/internal/layout"
	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/theme"
	"github.com/akyairhashvil/gantterm/internal/timeline"
)

// GanttModel is the root bubbletea model: one project timeline with an
// interactive canvas. All view state lives here, injected per instance;
// nothing is package-global.
type GanttModel struct {
	ctx       context.Context
	db        database.Store
	projectID int64

	snap      models.Snapshot
	collapsed map[int64]bool
	lay       layout.Result
	loaded    bool

	themeName string
	theme     theme.Config
	styles    Styles

	granularity timeline.Granularity
	ppd         float64
	window      timeline.Range
	snapToGrid  bool

	showWeekends bool
	showToday    bool
	showDayLines bool

	selectedRow  int
	scrollCol    int
	sidebarWidth int

	// body scrolls the sidebar/canvas rows vertically; its YOffset is
	// the index of the first visible layout row.
	body viewport.Model

	drag *gesture.Controller

	themePicking bool
	themeNames   []string
	themeCursor  int

	statusMsg string
	statusErr bool

	width  int
	height int
	now    time.Time
}

// NewGanttModel builds the model with persisted view settings applied.
func NewGanttModel(ctx context.Context, db database.Store, projectID int64) GanttModel {
	m := GanttModel{
		ctx:          ctx,
		db:           db,
		projectID:    projectID,
		collapsed:    make(map[int64]bool),
		sidebarWidth: config.DefaultSidebarWidth,
		body:         viewport.New(0, 0),
		now:          time.Now(),
	}

	m.themeName = db.GetSetting(ctx, config.SettingTheme, "default")
	m.theme = theme.Resolve(m.themeName)
	m.styles = NewStyles(m.theme)
	m.themeNames = theme.Names()

	m.granularity = timeline.ParseGranularity(db.GetSetting(ctx, config.SettingZoom, "week"))
	m.snapToGrid = db.GetSetting(ctx, config.SettingSnapToGrid, "1") == "1"
	m.showWeekends = db.GetSetting(ctx, config.SettingShowWeekends, "1") == "1"
	m.showToday = db.GetSetting(ctx, config.SettingShowToday, "1") == "1"
	m.showDayLines = db.GetSetting(ctx, config.SettingShowDayLines,
		boolSetting(m.theme.ShowDayLines)) == "1"

	m.ppd = defaultZoom(m.granularity)
	if v, err := strconv.ParseFloat(db.GetSetting(ctx, config.SettingPixelsPerDay, ""), 64); err == nil && v > 0 {
		m.ppd = timeline.ClampPixelsPerDay(v)
	}

	m.drag = gesture.NewController(gesture.Config{
		PixelsPerDay: m.ppd,
		Snap:         m.snapToGrid,
		Granularity:  m.granularity,
	})
	return m
}

// defaultZoom picks a readable scale per granularity, in pixels per day.
func defaultZoom(g timeline.Granularity) float64 {
	switch g {
	case timeline.GranularityDay:
		return 40
	case timeline.GranularityWeek:
		return 16
	case timeline.GranularityMonth:
		return 4
	default:
		return 2
	}
}

func (m GanttModel) Init() tea.Cmd {
	return tea.Batch(m.loadSnapshotCmd(), tickCmd())
}

// rebuild refreshes the derived layout after snapshot, collapse or theme
// changes.
func (m *GanttModel) rebuild() {
	m.lay = layout.Build(m.snap.Deliverables, m.collapsed, m.theme.Palette)
	if m.window.Start.IsZero() {
		m.window = timeline.DefaultRange(m.snap.Project, m.granularity)
	}
	if m.selectedRow >= len(m.lay.Rows) {
		m.selectedRow = len(m.lay.Rows) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// buildScene composes the current frame, with the provisional gesture
// dates substituted while a drag is live.
func (m GanttModel) buildScene() compose.Scene {
	opts := compose.Options{
		Range:        m.window,
		PixelsPerDay: m.ppd,
		Granularity:  m.granularity,
		Theme:        m.theme,
		Now:          m.now,
		ShowWeekends: m.showWeekends,
		ShowToday:    m.showToday,
		ShowDayLines: m.showDayLines,
	}
	if start, end, ok := m.drag.Provisional(); ok {
		opts.Override = &compose.Override{TaskID: m.drag.TaskID(), Start: start, End: end}
	}
	return compose.BuildScene(m.snap, m.lay, opts)
}

// resetGesture rebuilds the controller when zoom or snapping changes; an
// in-flight gesture is cancelled rather than committed at the old scale.
func (m *GanttModel) resetGesture() {
	m.drag = gesture.NewController(gesture.Config{
		PixelsPerDay: m.ppd,
		Snap:         m.snapToGrid,
		Granularity:  m.granularity,
	})
}

func (m *GanttModel) setStatusError(msg string) {
	m.statusMsg = msg
	m.statusErr = true
}

func (m *GanttModel) setStatusInfo(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

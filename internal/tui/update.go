package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/gesture"
	"github.com/akyairhashvil/gantterm/internal/layout"
	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/theme"
	"github.com/akyairhashvil/gantterm/internal/timeline"
	"github.com/akyairhashvil/gantterm/internal/util"
)

// statusCycle is the order the s key walks through.
var statusCycle = map[models.TaskStatus]models.TaskStatus{
	models.StatusNotStarted:  models.StatusInProgress,
	models.StatusInProgress:  models.StatusUnderReview,
	models.StatusUnderReview: models.StatusCompleted,
	models.StatusCompleted:   models.StatusBlocked,
	models.StatusBlocked:     models.StatusNotStarted,
}

func (m GanttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case snapshotMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("load failed: %v", msg.err))
			return m, nil
		}
		m.snap = msg.snap
		m.collapsed = msg.collapsed
		m.loaded = true
		m.rebuild()
		return m, nil

	case commitResultMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("save failed: %v", msg.err))
		}
		// Reload either way; the store owns the authoritative dates.
		return m, m.loadSnapshotCmd()

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatusError(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.setStatusInfo("exported " + msg.path)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.themePicking {
			return m.updateThemePicker(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m GanttModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "+", "=":
		return m.setZoom(m.ppd * 1.25)
	case "-", "_":
		return m.setZoom(m.ppd / 1.25)

	case "g":
		m.granularity = nextGranularity(m.granularity)
		m.window = timeline.DefaultRange(m.snap.Project, m.granularity)
		m.ppd = defaultZoom(m.granularity)
		m.scrollCol = 0
		m.resetGesture()
		return m, m.saveSettingCmd(config.SettingZoom, m.granularity.String())

	case "n":
		m.snapToGrid = !m.snapToGrid
		m.resetGesture()
		m.setStatusInfo(onOff("snap to grid", m.snapToGrid))
		return m, m.saveSettingCmd(config.SettingSnapToGrid, boolSetting(m.snapToGrid))
	case "w":
		m.showWeekends = !m.showWeekends
		return m, m.saveSettingCmd(config.SettingShowWeekends, boolSetting(m.showWeekends))
	case "t":
		m.showToday = !m.showToday
		return m, m.saveSettingCmd(config.SettingShowToday, boolSetting(m.showToday))
	case "d":
		m.showDayLines = !m.showDayLines
		return m, m.saveSettingCmd(config.SettingShowDayLines, boolSetting(m.showDayLines))

	case "[":
		m.sidebarWidth = util.Clamp(m.sidebarWidth-2, config.MinSidebarWidth, config.MaxSidebarWidth)
		return m, nil
	case "]":
		m.sidebarWidth = util.Clamp(m.sidebarWidth+2, config.MinSidebarWidth, config.MaxSidebarWidth)
		return m, nil

	case "left", "h":
		m.scrollCol = util.Clamp(m.scrollCol-4, 0, m.maxScrollCol())
		return m, nil
	case "right", "l":
		m.scrollCol = util.Clamp(m.scrollCol+4, 0, m.maxScrollCol())
		return m, nil

	case "up", "k":
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		m.moveSelection(1)
		return m, nil

	case "enter", " ":
		return m.toggleCollapse()

	case "s":
		row := m.lay.RowAt(m.selectedRow)
		if row == nil || row.Type != layout.RowTask {
			return m, nil
		}
		next := statusCycle[row.Task.Status]
		return m, m.cycleStatusCmd(row.Task.ID, next)

	case "T":
		m.themePicking = true
		m.themeCursor = indexOf(m.themeNames, m.themeName)
		return m, nil

	case "e":
		m.setStatusInfo("exporting svg...")
		return m, m.exportCmd("svg")
	case "E":
		m.setStatusInfo("exporting pdf...")
		return m, m.exportCmd("pdf")

	case "r":
		return m, m.loadSnapshotCmd()
	}
	return m, nil
}

func (m GanttModel) updateThemePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case "down", "j":
		if m.themeCursor < len(m.themeNames)-1 {
			m.themeCursor++
		}
	case "enter":
		m.themeName = m.themeNames[m.themeCursor]
		m.theme = theme.Resolve(m.themeName)
		m.styles = NewStyles(m.theme)
		m.themePicking = false
		m.rebuild()
		return m, m.saveSettingCmd(config.SettingTheme, m.themeName)
	case "esc", "q", "T":
		m.themePicking = false
	}
	return m, nil
}

func (m GanttModel) setZoom(ppd float64) (tea.Model, tea.Cmd) {
	m.ppd = timeline.ClampPixelsPerDay(ppd)
	m.scrollCol = util.Clamp(m.scrollCol, 0, m.maxScrollCol())
	m.resetGesture()
	return m, m.saveSettingCmd(config.SettingPixelsPerDay,
		strconv.FormatFloat(m.ppd, 'f', 1, 64))
}

func (m GanttModel) toggleCollapse() (tea.Model, tea.Cmd) {
	row := m.lay.RowAt(m.selectedRow)
	if row == nil || row.Type != layout.RowDeliverable {
		return m, nil
	}
	id := row.Deliverable.ID
	collapsed := !m.collapsed[id]
	if collapsed {
		m.collapsed[id] = true
	} else {
		delete(m.collapsed, id)
	}
	m.rebuild()
	return m, m.setCollapsedCmd(id, collapsed)
}

func (m *GanttModel) moveSelection(delta int) {
	if len(m.lay.Rows) == 0 {
		return
	}
	m.selectedRow = util.Clamp(m.selectedRow+delta, 0, len(m.lay.Rows)-1)
	visible := m.canvasRows()
	if m.selectedRow < m.body.YOffset {
		m.body.YOffset = m.selectedRow
	}
	if visible > 0 && m.selectedRow >= m.body.YOffset+visible {
		m.body.YOffset = m.selectedRow - visible + 1
	}
}

// --- Mouse ---

func (m GanttModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.body.YOffset = util.Clamp(m.body.YOffset-1, 0, m.maxScrollRow())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.body.YOffset = util.Clamp(m.body.YOffset+1, 0, m.maxScrollRow())
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.mouseDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.drag.PointerMove(m.pixelAtColumn(msg.X))
		}
		return m, nil
	case tea.MouseActionRelease:
		if commit, ok := m.drag.PointerUp(m.pixelAtColumn(msg.X)); ok {
			return m, m.commitCmd(commit)
		}
	}
	return m, nil
}

// mouseDown hit-tests the canvas: a press on a bar edge begins a resize,
// on the bar body a move, anywhere else it just moves the selection.
func (m GanttModel) mouseDown(x, y int) (tea.Model, tea.Cmd) {
	rowIdx := y - m.canvasTop() + m.body.YOffset
	row := m.lay.RowAt(rowIdx)
	if row == nil || x < m.canvasLeft() {
		return m, nil
	}
	m.selectedRow = rowIdx

	if row.Type != layout.RowTask {
		return m, nil
	}
	task := row.Task
	px := m.pixelAtColumn(x)
	barX := timeline.DateToX(task.StartDate, m.window.Start, m.ppd)
	barW := timeline.BarWidth(task.StartDate, task.EndDate, m.ppd)
	if px < barX || px > barX+barW {
		return m, nil
	}

	// Edge handles are one cell wide, never more than half the bar.
	edge := pxPerCell
	if edge > barW/2 {
		edge = barW / 2
	}
	switch {
	case px <= barX+edge:
		m.drag.BeginResize(gesture.EdgeStart, task.ID, task.StartDate, task.EndDate, px)
	case px >= barX+barW-edge:
		m.drag.BeginResize(gesture.EdgeEnd, task.ID, task.StartDate, task.EndDate, px)
	default:
		m.drag.BeginDrag(task.ID, task.StartDate, task.EndDate, px)
	}
	return m, nil
}

// pixelAtColumn maps a terminal column to scene pixel space, at the
// centre of the cell.
func (m GanttModel) pixelAtColumn(x int) float64 {
	return (float64(x-m.canvasLeft()+m.scrollCol) + 0.5) * pxPerCell
}

// --- Geometry helpers ---

func (m GanttModel) canvasTop() int  { return 3 }
func (m GanttModel) canvasLeft() int { return m.sidebarWidth + 1 }

func (m GanttModel) canvasCols() int {
	c := m.width - m.canvasLeft()
	if c < 0 {
		return 0
	}
	return c
}

func (m GanttModel) canvasRows() int {
	r := m.height - m.canvasTop() - 1
	if r < 0 {
		return 0
	}
	return r
}

func (m GanttModel) sceneCols() int {
	return int(float64(m.window.Days()) * m.ppd / pxPerCell)
}

func (m GanttModel) maxScrollCol() int {
	max := m.sceneCols() - m.canvasCols()
	if max < 0 {
		return 0
	}
	return max
}

func (m GanttModel) maxScrollRow() int {
	max := len(m.lay.Rows) - m.canvasRows()
	if max < 0 {
		return 0
	}
	return max
}

func nextGranularity(g timeline.Granularity) timeline.Granularity {
	switch g {
	case timeline.GranularityDay:
		return timeline.GranularityWeek
	case timeline.GranularityWeek:
		return timeline.GranularityMonth
	case timeline.GranularityMonth:
		return timeline.GranularityQuarter
	default:
		return timeline.GranularityDay
	}
}

func boolSetting(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func onOff(label string, on bool) string {
	if on {
		return label + " on"
	}
	return label + " off"
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return 0
}

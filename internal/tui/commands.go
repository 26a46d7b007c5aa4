package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/export"
	"github.com/akyairhashvil/gantterm/internal/gesture"
	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/util"
)

// --- Messages ---

type TickMsg time.Time

type snapshotMsg struct {
	snap      models.Snapshot
	collapsed map[int64]bool
	err       error
}

type commitResultMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// --- Commands ---

func (m GanttModel) loadSnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.db.LoadSnapshot(m.ctx, m.projectID)
		if err != nil {
			return snapshotMsg{err: err}
		}
		collapsed, err := m.db.CollapsedDeliverables(m.ctx, m.projectID)
		if err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{snap: snap, collapsed: collapsed}
	}
}

// commitCmd maps a finished gesture onto the matching store mutation.
func (m GanttModel) commitCmd(c gesture.Commit) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch c.Kind {
		case gesture.CommitMove:
			err = m.db.MoveTask(m.ctx, c.TaskID, c.Start, c.End)
		case gesture.CommitResizeStart:
			err = m.db.ResizeTaskStart(m.ctx, c.TaskID, c.Start)
		case gesture.CommitResizeEnd:
			err = m.db.ResizeTaskEnd(m.ctx, c.TaskID, c.End)
		}
		return commitResultMsg{err: err}
	}
}

func (m GanttModel) cycleStatusCmd(taskID int64, next models.TaskStatus) tea.Cmd {
	return func() tea.Msg {
		return commitResultMsg{err: m.db.UpdateTaskStatus(m.ctx, taskID, next)}
	}
}

func (m GanttModel) setCollapsedCmd(deliverableID int64, collapsed bool) tea.Cmd {
	return func() tea.Msg {
		return commitResultMsg{err: m.db.SetCollapsed(m.ctx, deliverableID, collapsed)}
	}
}

func (m GanttModel) saveSettingCmd(key, value string) tea.Cmd {
	return func() tea.Msg {
		if err := m.db.SetSetting(m.ctx, key, value); err != nil {
			util.LogError("save setting", err)
		}
		return nil
	}
}

func (m GanttModel) exportCmd(format string) tea.Cmd {
	scene := m.buildScene()
	th := m.theme
	name := m.snap.Project.Name
	return func() tea.Msg {
		dir := util.ReportsDir(config.AppName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportDoneMsg{err: err}
		}
		stamp := time.Now().Format("2006-01-02_150405")
		path := filepath.Join(dir, fmt.Sprintf("gantt_%s.%s", stamp, format))
		var err error
		switch format {
		case "svg":
			err = export.SaveSVG(path, scene, th)
		case "pdf":
			err = export.WritePDF(path, name, scene, th)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/layout"
	"github.com/akyairhashvil/gantterm/internal/timeline"
)

func (m GanttModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "starting..."
	}
	if !m.loaded {
		return m.styles.Footer.Render("loading project...")
	}

	scene := m.buildScene()
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderRuler(scene.MonthTicks, true))
	b.WriteByte('\n')
	b.WriteString(m.renderRuler(scene.SubTicks, false))
	b.WriteByte('\n')

	vp := m.body
	vp.Width = m.width
	vp.Height = m.canvasRows()
	vp.SetContent(m.renderBody(scene))
	b.WriteString(vp.View())
	b.WriteByte('\n')

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderBody renders every layout row; the viewport clips to the visible
// window and applies the vertical scroll offset.
func (m GanttModel) renderBody(scene compose.Scene) string {
	rows := len(m.lay.Rows)
	grid := rasterize(scene, m.theme, m.canvasCols(), rows, m.scrollCol, 0)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = m.renderSidebarRow(i) + renderCells(grid[i])
	}
	return strings.Join(lines, "\n")
}

func (m GanttModel) renderTitle() string {
	title := fmt.Sprintf(" gantterm  %s  %s", m.snap.Project.Name,
		FormatRange(m.window.Start, m.window.End))
	return m.styles.Title.Width(m.width).Render(ansi.Truncate(title, m.width, "..."))
}

// renderRuler lays tick labels onto one header line, clipped to the
// visible columns. The sidebar width is blanked so the ruler aligns with
// the canvas.
func (m GanttModel) renderRuler(ticks []timeline.Tick, bold bool) string {
	cols := m.canvasCols()
	line := make([]rune, cols)
	for i := range line {
		line[i] = ' '
	}
	for _, tk := range ticks {
		if tk.Label == "" {
			continue
		}
		c := int(tk.X/pxPerCell) - m.scrollCol
		for _, ch := range tk.Label {
			if c >= cols {
				break
			}
			if c >= 0 {
				line[c] = ch
			}
			c++
		}
	}
	style := m.styles.SubHeader
	if bold {
		style = m.styles.Header.Bold(true)
	}
	pad := m.styles.Header.Width(m.canvasLeft()).Render("")
	return pad + style.Render(string(line))
}

func (m GanttModel) renderSidebarRow(idx int) string {
	width := m.sidebarWidth
	row := m.lay.RowAt(idx)
	if row == nil {
		return m.styles.Sidebar.Width(width + 1).Render("")
	}

	var text string
	var style lipgloss.Style
	switch row.Type {
	case layout.RowDeliverable:
		arrow := "▾"
		if m.collapsed[row.Deliverable.ID] {
			arrow = "▸"
		}
		text = fmt.Sprintf("%s %s", arrow, row.Deliverable.Name)
		style = m.styles.Sidebar.Bold(true)
		if row.Colour != "" {
			style = style.Foreground(lipgloss.Color(row.Colour))
		}
	default:
		text = "   " + row.Task.Name
		style = m.styles.Sidebar
	}
	if idx == m.selectedRow {
		style = m.styles.Selected
	}
	text = ansi.Truncate(text, width-1, "…")
	return style.Width(width).Render(text) + m.styles.Sidebar.Render("│")
}

func (m GanttModel) renderFooter() string {
	if m.themePicking {
		var items []string
		for i, name := range m.themeNames {
			if i == m.themeCursor {
				items = append(items, m.styles.Selected.Render(" "+name+" "))
			} else {
				items = append(items, m.styles.Footer.Render(" "+name+" "))
			}
		}
		return "theme: " + strings.Join(items, " ")
	}

	keys := "q quit  +/- zoom  g scale  space fold  s status  T theme  e/E export"
	if m.statusMsg != "" {
		style := m.styles.StatusInfo
		if m.statusErr {
			style = m.styles.StatusError
		}
		return style.Render(m.statusMsg) + "  " + m.styles.Footer.Render(keys)
	}
	if m.drag.Active() {
		if start, end, ok := m.drag.Provisional(); ok {
			return m.styles.StatusInfo.Render(FormatRange(start, end)) +
				"  " + m.styles.Footer.Render(keys)
		}
	}
	return m.styles.Footer.Render(keys)
}

// renderCells converts one raster row to a styled string, batching runs
// of identical colours into a single style call.
func renderCells(cells []cell) string {
	if len(cells) == 0 {
		return ""
	}
	var b strings.Builder
	var run strings.Builder
	cur := cells[0]
	flush := func() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(cur.fg)).
			Background(lipgloss.Color(cur.bg)).
			Render(run.String()))
		run.Reset()
	}
	for _, c := range cells {
		if c.fg != cur.fg || c.bg != cur.bg {
			flush()
			cur = c
		}
		run.WriteRune(c.ch)
	}
	flush()
	return b.String()
}

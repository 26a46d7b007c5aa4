package tui

import (
	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/theme"
)

// pxPerCell is the horizontal scene resolution of one terminal cell.
// Vertically one layout row maps onto one terminal row.
const pxPerCell = 8.0

// cell is one rasterized character: glyph plus foreground/background hex.
type cell struct {
	ch rune
	fg string
	bg string
}

// rasterize paints the scene onto a cols x rows cell grid, offset by
// colOff/rowOff cells. Primitives arrive pre-ordered back-to-front, so a
// straight paint loop preserves the layer contract.
func rasterize(s compose.Scene, th theme.Config, cols, rows, colOff, rowOff int) [][]cell {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{ch: ' ', bg: th.CanvasBackground, fg: th.SubHeaderForeground}
		}
	}
	if s.RowHeight <= 0 {
		return grid
	}

	for _, p := range s.Prims {
		switch v := p.(type) {
		case compose.Rect:
			paintRect(grid, s, v, cols, rows, colOff, rowOff)
		case compose.Line:
			paintLine(grid, s, v, cols, rows, colOff, rowOff)
		case compose.Label:
			paintLabel(grid, s, v, cols, rows, colOff, rowOff)
		}
	}
	return grid
}

func paintRect(grid [][]cell, s compose.Scene, rc compose.Rect, cols, rows, colOff, rowOff int) {
	c0 := int(rc.X/pxPerCell) - colOff
	c1 := int((rc.X+rc.W-0.5)/pxPerCell) - colOff
	r0 := int(rc.Y/s.RowHeight) - rowOff
	r1 := int((rc.Y+rc.H-0.5)/s.RowHeight) - rowOff
	for r := maxInt(r0, 0); r <= r1 && r < rows; r++ {
		// Sample at the row centre so padded bars land on their row only.
		yMid := (float64(r+rowOff) + 0.5) * s.RowHeight
		if yMid < rc.Y || yMid > rc.Y+rc.H {
			continue
		}
		for c := maxInt(c0, 0); c <= c1 && c < cols; c++ {
			cur := &grid[r][c]
			if rc.Opacity > 0 && rc.Opacity < 1 {
				cur.bg = compose.MixOver(cur.bg, rc.Fill, rc.Opacity)
			} else {
				cur.bg = rc.Fill
			}
			cur.fg = compose.TextColourFor(cur.bg)
		}
	}
}

// paintLine draws vertical lines as box glyphs; horizontal row dividers
// have no cell row of their own and are skipped.
func paintLine(grid [][]cell, s compose.Scene, l compose.Line, cols, rows, colOff, rowOff int) {
	if l.X1 != l.X2 {
		return
	}
	c := int(l.X1/pxPerCell) - colOff
	if c < 0 || c >= cols {
		return
	}
	ch := '│'
	if l.Width >= 2 {
		ch = '┃'
	}
	r0 := int(l.Y1/s.RowHeight) - rowOff
	r1 := int((l.Y2-0.5)/s.RowHeight) - rowOff
	for r := maxInt(r0, 0); r <= r1 && r < rows; r++ {
		grid[r][c].ch = ch
		grid[r][c].fg = l.Colour
	}
}

func paintLabel(grid [][]cell, s compose.Scene, l compose.Label, cols, rows, colOff, rowOff int) {
	r := int(l.Y/s.RowHeight) - rowOff
	if r < 0 || r >= rows {
		return
	}
	c := int(l.X/pxPerCell) - colOff
	for _, ch := range l.Text {
		if c >= cols {
			return
		}
		if c >= 0 {
			grid[r][c].ch = ch
			grid[r][c].fg = l.Colour
		}
		c++
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

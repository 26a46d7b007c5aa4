// Package layout flattens the deliverable→task tree into the ordered row
// sequence the sidebar and canvas both render from.
package layout

import (
	"fmt"

	"github.com/akyairhashvil/gantterm/internal/models"
)

// RowType distinguishes deliverable header rows from task rows.
type RowType int

const (
	RowDeliverable RowType = iota
	RowTask
)

// Row is one visual line. Rows are a pure projection of the snapshot plus
// the collapse set; they are recomputed on every change and have no
// lifecycle of their own.
type Row struct {
	Type            RowType
	ID              string
	Index           int
	Deliverable     *models.Deliverable
	Task            *models.Task
	Colour          string
	FirstInCategory bool
	LastInCategory  bool
	CategoryStart   int
	CategoryRows    int
}

// Band is a contiguous vertical run of rows belonging to one deliverable,
// used for background tinting and divider placement.
type Band struct {
	CategoryID int64
	Colour     string
	StartRow   int
	RowCount   int
}

// Result carries the flat row list and the derived category bands.
type Result struct {
	Rows  []Row
	Bands []Band
}

// categoryColour resolves a deliverable's display colour: explicit value
// first, else the palette indexed cyclically by position.
func categoryColour(d *models.Deliverable, position int, palette []string) string {
	if d.Colour != "" {
		return d.Colour
	}
	if len(palette) == 0 {
		return ""
	}
	return palette[position%len(palette)]
}

// Build flattens deliverables into rows in one pass. Each deliverable
// contributes a header row followed by its task rows unless collapsed.
// Row indices are contiguous from 0; a band closes exactly when the next
// header row opens.
func Build(deliverables []models.Deliverable, collapsed map[int64]bool, palette []string) Result {
	var res Result
	index := 0

	for i := range deliverables {
		d := &deliverables[i]
		colour := categoryColour(d, i, palette)
		bandStart := index

		rows := 1
		if !collapsed[d.ID] {
			rows += len(d.Tasks)
		}

		res.Rows = append(res.Rows, Row{
			Type:            RowDeliverable,
			ID:              fmt.Sprintf("d:%d", d.ID),
			Index:           index,
			Deliverable:     d,
			Colour:          colour,
			FirstInCategory: true,
			LastInCategory:  rows == 1,
			CategoryStart:   bandStart,
			CategoryRows:    rows,
		})
		index++

		if !collapsed[d.ID] {
			for j := range d.Tasks {
				task := &d.Tasks[j]
				res.Rows = append(res.Rows, Row{
					Type:           RowTask,
					ID:             fmt.Sprintf("t:%d", task.ID),
					Index:          index,
					Deliverable:    d,
					Task:           task,
					Colour:         colour,
					LastInCategory: j == len(d.Tasks)-1,
					CategoryStart:  bandStart,
					CategoryRows:   rows,
				})
				index++
			}
		}

		res.Bands = append(res.Bands, Band{
			CategoryID: d.ID,
			Colour:     colour,
			StartRow:   bandStart,
			RowCount:   rows,
		})
	}

	return res
}

// RowAt returns the row at a vertical index, or nil when out of range.
func (r Result) RowAt(index int) *Row {
	if index < 0 || index >= len(r.Rows) {
		return nil
	}
	return &r.Rows[index]
}

// TaskRow finds the row carrying the given task ID, or nil.
func (r Result) TaskRow(taskID int64) *Row {
	id := fmt.Sprintf("t:%d", taskID)
	for i := range r.Rows {
		if r.Rows[i].Type == RowTask && r.Rows[i].ID == id {
			return &r.Rows[i]
		}
	}
	return nil
}

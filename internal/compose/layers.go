// Package compose builds the layered Gantt scene. Paint order is fixed
// back-to-front so overlays never visually invert, whatever the data or
// fetch timing: weekend tint, today tint, week lines, month lines, row
// dividers, category bands, highlight overlays, task bars, today line.
package compose

import (
	"time"

	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/layout"
	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/theme"
	"github.com/akyairhashvil/gantterm/internal/timeline"
)

// Override substitutes a task's dates with the in-progress provisional
// pair while a gesture is active.
type Override struct {
	TaskID int64
	Start  time.Time
	End    time.Time
}

// Options parameterize one render pass. Everything is supplied by the
// caller; the compositor holds no state between passes.
type Options struct {
	Range        timeline.Range
	PixelsPerDay float64
	Granularity  timeline.Granularity
	Theme        theme.Config
	Now          time.Time
	RowHeight    float64

	ShowWeekends bool
	ShowToday    bool
	ShowDayLines bool

	Override *Override
}

func (o Options) rowHeight() float64 {
	if o.RowHeight > 0 {
		return o.RowHeight
	}
	return config.RowHeight
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// BuildScene composes the full canvas for one snapshot render pass. A
// degenerate layout (no rows, inverted range) yields an empty scene, not
// a panic.
func BuildScene(snap models.Snapshot, lay layout.Result, opts Options) Scene {
	ppd := opts.PixelsPerDay
	if ppd <= 0 {
		ppd = config.MinPixelsPerDay
	}
	rh := opts.rowHeight()
	r := opts.Range

	s := Scene{
		Width:     float64(r.Days()) * ppd,
		Height:    float64(len(lay.Rows)) * rh,
		RowHeight: rh,
	}
	s.MonthTicks = timeline.Ticks(r.Start, r.End, headerGranularity(opts.Granularity), ppd)
	s.SubTicks = timeline.Ticks(r.Start, r.End, subGranularity(opts.Granularity), ppd)

	if len(lay.Rows) == 0 || s.Width <= 0 {
		return s
	}

	s.addWeekendTint(r, ppd, opts)
	s.addTodayTint(r, ppd, opts)
	s.addGridLines(r, ppd, opts)
	s.addRowDividers(lay, opts)
	s.addBands(lay, opts)
	s.addHighlights(snap.Highlights, r, ppd, opts)
	s.addBars(lay, ppd, r, opts)
	s.addTodayLine(r, ppd, opts)
	return s
}

func headerGranularity(g timeline.Granularity) timeline.Granularity {
	if g == timeline.GranularityQuarter {
		return timeline.GranularityQuarter
	}
	return timeline.GranularityMonth
}

func subGranularity(g timeline.Granularity) timeline.Granularity {
	switch g {
	case timeline.GranularityDay:
		return timeline.GranularityDay
	case timeline.GranularityQuarter:
		return timeline.GranularityMonth
	default:
		return timeline.GranularityWeek
	}
}

func (s *Scene) addWeekendTint(r timeline.Range, ppd float64, opts Options) {
	if !opts.ShowWeekends {
		return
	}
	for _, run := range timeline.WeekendRuns(r.Start, r.End, ppd) {
		s.add(Rect{
			L: LayerWeekend, X: run.X, W: run.Width, H: s.Height,
			Fill: opts.Theme.WeekendTint, Opacity: opts.Theme.WeekendOpacity,
		})
	}
}

func (s *Scene) addTodayTint(r timeline.Range, ppd float64, opts Options) {
	if !opts.ShowToday {
		return
	}
	x, ok := timeline.TodayXAt(opts.now(), r.Start, r.End, ppd)
	if !ok {
		return
	}
	s.add(Rect{
		L: LayerTodayTint, X: x, W: ppd, H: s.Height,
		Fill: opts.Theme.TodayTint, Opacity: opts.Theme.TodayOpacity,
	})
}

func (s *Scene) addGridLines(r timeline.Range, ppd float64, opts Options) {
	// Optional day lines sit on the week layer; they are suppressed
	// entirely below the legibility scale.
	if opts.ShowDayLines && ppd >= config.MinDayLinePixels {
		for _, tk := range timeline.Ticks(r.Start, r.End, timeline.GranularityDay, ppd) {
			if tk.X == 0 {
				continue
			}
			s.add(Line{L: LayerGridWeek, X1: tk.X, Y1: 0, X2: tk.X, Y2: s.Height,
				Colour: opts.Theme.RowDivider, Width: 1, Dashed: true})
		}
	}
	for _, tk := range timeline.Ticks(r.Start, r.End, timeline.GranularityWeek, ppd) {
		if tk.X == 0 {
			continue
		}
		s.add(Line{L: LayerGridWeek, X1: tk.X, Y1: 0, X2: tk.X, Y2: s.Height,
			Colour: opts.Theme.GridLineWeek, Width: 1, Dashed: true})
	}
	// Month lines render after week lines so they win where they coincide.
	for _, tk := range timeline.Ticks(r.Start, r.End, timeline.GranularityMonth, ppd) {
		if tk.X == 0 {
			continue
		}
		s.add(Line{L: LayerGridMonth, X1: tk.X, Y1: 0, X2: tk.X, Y2: s.Height,
			Colour: opts.Theme.GridLineMonth, Width: 2})
	}
}

func (s *Scene) addRowDividers(lay layout.Result, opts Options) {
	rh := opts.rowHeight()
	for _, row := range lay.Rows {
		y := float64(row.Index+1) * rh
		if row.LastInCategory {
			// Category boundary: solid and heavier.
			s.add(Line{L: LayerRowDivider, X1: 0, Y1: y, X2: s.Width, Y2: y,
				Colour: opts.Theme.CategoryEdge, Width: 2})
		} else {
			s.add(Line{L: LayerRowDivider, X1: 0, Y1: y, X2: s.Width, Y2: y,
				Colour: opts.Theme.RowDivider, Width: 1, Dashed: true})
		}
	}
}

func (s *Scene) addBands(lay layout.Result, opts Options) {
	rh := opts.rowHeight()
	for _, b := range lay.Bands {
		if b.Colour == "" || b.RowCount == 0 {
			continue
		}
		s.add(Rect{
			L: LayerBand, Y: float64(b.StartRow) * rh,
			W: s.Width, H: float64(b.RowCount) * rh,
			Fill: b.Colour, Opacity: opts.Theme.BandOpacity,
		})
	}
}

func (s *Scene) addHighlights(highlights []models.Highlight, r timeline.Range, ppd float64, opts Options) {
	for _, hl := range highlights {
		start := timeline.DayStart(hl.StartDate)
		end := timeline.DayStart(hl.EndDate)
		if end.Before(timeline.DayStart(r.Start)) || start.After(timeline.DayStart(r.End)) {
			continue
		}
		x := timeline.DateToX(start, r.Start, ppd)
		xEnd := timeline.DateToX(end, r.Start, ppd) + ppd
		if x < 0 {
			x = 0
		}
		if xEnd > s.Width {
			xEnd = s.Width
		}
		w := xEnd - x
		if w <= 0 {
			continue
		}
		opacity := hl.Opacity
		if opacity <= 0 {
			opacity = opts.Theme.HighlightOpacity
		}
		s.add(Rect{L: LayerHighlight, X: x, W: w, H: s.Height, Fill: hl.Colour, Opacity: opacity})
		s.add(Line{L: LayerHighlight, X1: x, Y1: 0, X2: x, Y2: s.Height, Colour: hl.Colour, Width: 1})
		s.add(Line{L: LayerHighlight, X1: x + w, Y1: 0, X2: x + w, Y2: s.Height, Colour: hl.Colour, Width: 1})

		if hl.ShowLabel && w >= config.MinHighlightLabelWidth {
			y := 12.0
			if hl.LabelPosition == models.LabelBottom {
				y = s.Height - 6
			}
			effective := MixOver(opts.Theme.CanvasBackground, hl.Colour, opacity)
			s.add(Label{L: LayerHighlight, X: x + 4, Y: y, Text: hl.Name, Colour: TextColourFor(effective)})
		}
	}
}

// barColour resolves a task's fill: explicit colour, else category
// colour, else status fallback.
func barColour(task *models.Task, row layout.Row, th theme.Config) string {
	if task.Colour != "" {
		return task.Colour
	}
	if row.Colour != "" {
		return row.Colour
	}
	return th.StatusColour(task.Status)
}

func (s *Scene) addBars(lay layout.Result, ppd float64, r timeline.Range, opts Options) {
	rh := opts.rowHeight()
	th := opts.Theme

	for _, row := range lay.Rows {
		if row.Type == layout.RowDeliverable {
			s.addSummaryBar(row, ppd, r, opts)
			continue
		}
		task := row.Task
		start, end := task.StartDate, task.EndDate
		if opts.Override != nil && opts.Override.TaskID == task.ID {
			start, end = opts.Override.Start, opts.Override.End
		}
		x := timeline.DateToX(start, r.Start, ppd)
		w := timeline.BarWidth(start, end, ppd)
		y := float64(row.Index)*rh + config.BarPadding
		h := rh - 2*config.BarPadding
		fill := barColour(task, row, th)

		s.add(Rect{L: LayerBar, X: x, Y: y, W: w, H: h, Fill: fill, Radius: th.BarCornerRadius})
		s.addProgress(task, x, y, w, h, fill, th)

		if th.BarLabels && w >= config.MinTickLabelWidth {
			s.add(Label{L: LayerBar, X: x + 6, Y: y + h/2, Text: task.Name, Colour: TextColourFor(fill)})
		}
	}
}

// addSummaryBar draws a thin span across the deliverable's task range on
// its header row, so collapsed categories still show their extent.
func (s *Scene) addSummaryBar(row layout.Row, ppd float64, r timeline.Range, opts Options) {
	d := row.Deliverable
	if d == nil || len(d.Tasks) == 0 {
		return
	}
	minStart, maxEnd := d.Tasks[0].StartDate, d.Tasks[0].EndDate
	for _, t := range d.Tasks[1:] {
		if t.StartDate.Before(minStart) {
			minStart = t.StartDate
		}
		if t.EndDate.After(maxEnd) {
			maxEnd = t.EndDate
		}
	}
	rh := opts.rowHeight()
	x := timeline.DateToX(minStart, r.Start, ppd)
	w := timeline.BarWidth(minStart, maxEnd, ppd)
	h := rh / 4
	y := float64(row.Index)*rh + (rh-h)/2
	fill := row.Colour
	if fill == "" {
		fill = opts.Theme.StatusColour(d.Status)
	}
	s.add(Rect{L: LayerBar, X: x, Y: y, W: w, H: h, Fill: fill, Opacity: 0.6, Radius: h / 2})
}

func (s *Scene) addProgress(task *models.Task, x, y, w, h float64, fill string, th theme.Config) {
	p := task.Progress()
	if p <= 0 {
		return
	}
	switch th.Progress {
	case theme.ProgressStripe:
		s.add(Rect{L: LayerBar, X: x, Y: y + h - 3, W: w * p, H: 3, Fill: Lighten(fill, 0.4)})
	case theme.ProgressFill:
		s.add(Rect{L: LayerBar, X: x, Y: y, W: w * p, H: h, Fill: Darken(fill, 0.25), Radius: th.BarCornerRadius})
	default:
		s.add(Rect{L: LayerBar, X: x, Y: y, W: w * p, H: h, Fill: Darken(fill, 0.35), Opacity: 0.35, Radius: th.BarCornerRadius})
	}
}

func (s *Scene) addTodayLine(r timeline.Range, ppd float64, opts Options) {
	if !opts.ShowToday {
		return
	}
	x, ok := timeline.TodayXAt(opts.now(), r.Start, r.End, ppd)
	if !ok {
		return
	}
	// Centre of the day column, drawn last, always on top.
	cx := x + ppd/2
	s.add(Line{L: LayerTodayLine, X1: cx, Y1: 0, X2: cx, Y2: s.Height,
		Colour: opts.Theme.TodayLine, Width: 2, Glow: true})
}

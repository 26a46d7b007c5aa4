package compose

import "github.com/akyairhashvil/gantterm/internal/timeline"

// Layer tags every primitive with its place in the fixed back-to-front
// paint order. Primitives are appended to the scene already ordered; the
// tags exist so backends and tests can verify or filter.
type Layer int

const (
	LayerWeekend Layer = iota
	LayerTodayTint
	LayerGridWeek
	LayerGridMonth
	LayerRowDivider
	LayerBand
	LayerHighlight
	LayerBar
	LayerTodayLine
)

// Prim is one draw primitive. Backends type-switch over the concrete
// Rect/Line/Label types.
type Prim interface {
	Layer() Layer
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	L       Layer
	X, Y    float64
	W, H    float64
	Fill    string
	Opacity float64 // 0 means fully opaque
	Radius  float64
}

func (r Rect) Layer() Layer { return r.L }

// Line is a stroked segment. Glow asks capable backends for a soft
// drop-shadow (the today marker).
type Line struct {
	L      Layer
	X1, Y1 float64
	X2, Y2 float64
	Colour string
	Width  float64
	Dashed bool
	Glow   bool
}

func (l Line) Layer() Layer { return l.L }

// Label is positioned text. Colour is pre-resolved by the contrast rule.
type Label struct {
	L      Layer
	X, Y   float64
	Text   string
	Colour string
	Bold   bool
}

func (l Label) Layer() Layer { return l.L }

// Scene is the composed canvas: primitives in paint order plus the ruler
// ticks and the geometry every backend needs to stay pixel-aligned.
type Scene struct {
	Width     float64
	Height    float64
	RowHeight float64
	Prims     []Prim

	// Header ruler: a month row and a finer sub-row, both generated by
	// the same interval generator as the grid lines.
	MonthTicks []timeline.Tick
	SubTicks   []timeline.Tick
}

func (s *Scene) add(p Prim) { s.Prims = append(s.Prims, p) }

// RectsOn returns the rectangles tagged with a layer, in paint order.
func (s *Scene) RectsOn(l Layer) []Rect {
	var out []Rect
	for _, p := range s.Prims {
		if r, ok := p.(Rect); ok && r.L == l {
			out = append(out, r)
		}
	}
	return out
}

// LinesOn returns the lines tagged with a layer, in paint order.
func (s *Scene) LinesOn(l Layer) []Line {
	var out []Line
	for _, p := range s.Prims {
		if ln, ok := p.(Line); ok && ln.L == l {
			out = append(out, ln)
		}
	}
	return out
}

// LabelsOn returns the labels tagged with a layer, in paint order.
func (s *Scene) LabelsOn(l Layer) []Label {
	var out []Label
	for _, p := range s.Prims {
		if lb, ok := p.(Label); ok && lb.L == l {
			out = append(out, lb)
		}
	}
	return out
}

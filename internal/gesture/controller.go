// Package gesture tracks one drag or resize interaction on a task bar,
// from pointer-down to pointer-up. The controller owns the provisional
// date pair shown during the gesture; the committed result is handed to
// the caller as a change request, never applied to the task directly.
package gesture

import (
	"math"
	"time"

	"github.com/akyairhashvil/gantterm/internal/timeline"
)

// Phase is the controller state. Exactly one gesture may be active at a
// time per controller instance.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseResizingStart
	PhaseResizingEnd
)

// Edge identifies which end of the bar a resize grabs.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// CommitKind tells the caller which persistence call a finished gesture
// maps to.
type CommitKind int

const (
	CommitMove CommitKind = iota
	CommitResizeStart
	CommitResizeEnd
)

// Commit is the change request emitted on pointer-up. Callers must treat
// an unchanged date pair as a no-op; negligible moves still commit.
type Commit struct {
	Kind   CommitKind
	TaskID int64
	Start  time.Time
	End    time.Time
}

// Config parameterizes one gesture. PixelsPerDay comes from the active
// coordinate mapping; snapping quantizes provisional dates to the zoom
// granularity before display and commit.
type Config struct {
	PixelsPerDay float64
	Snap         bool
	Granularity  timeline.Granularity
}

// Controller is the per-view gesture state machine.
type Controller struct {
	cfg       Config
	phase     Phase
	taskID    int64
	origStart time.Time
	origEnd   time.Time
	originX   float64
	provStart time.Time
	provEnd   time.Time
}

func NewController(cfg Config) *Controller {
	return &Controller{cfg: cfg}
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.phase != PhaseIdle }

// TaskID returns the task under gesture, valid only while active.
func (c *Controller) TaskID() int64 { return c.taskID }

// Provisional returns the in-progress date pair for live preview.
func (c *Controller) Provisional() (start, end time.Time, ok bool) {
	if c.phase == PhaseIdle {
		return time.Time{}, time.Time{}, false
	}
	return c.provStart, c.provEnd, true
}

func (c *Controller) begin(phase Phase, taskID int64, start, end time.Time, x float64) {
	c.phase = phase
	c.taskID = taskID
	c.origStart = timeline.DayStart(start)
	c.origEnd = timeline.DayStart(end)
	c.originX = x
	c.provStart = c.origStart
	c.provEnd = c.origEnd
}

// BeginDrag starts a whole-bar move from a pointer-down on the bar body.
func (c *Controller) BeginDrag(taskID int64, start, end time.Time, x float64) {
	c.begin(PhaseDragging, taskID, start, end, x)
}

// BeginResize starts an edge resize from a pointer-down on a handle.
func (c *Controller) BeginResize(edge Edge, taskID int64, start, end time.Time, x float64) {
	if edge == EdgeStart {
		c.begin(PhaseResizingStart, taskID, start, end, x)
	} else {
		c.begin(PhaseResizingEnd, taskID, start, end, x)
	}
}

func (c *Controller) daysDelta(x float64) int {
	if c.cfg.PixelsPerDay <= 0 {
		return 0
	}
	return int(math.Round((x - c.originX) / c.cfg.PixelsPerDay))
}

func (c *Controller) snap(d time.Time) time.Time {
	if !c.cfg.Snap {
		return d
	}
	return timeline.SnapToGrid(d, c.cfg.Granularity)
}

// PointerMove updates the provisional dates from the current pointer
// position. Deltas that would invert the date order are rejected
// silently: the provisional pair keeps its last valid value.
func (c *Controller) PointerMove(x float64) {
	delta := c.daysDelta(x)
	switch c.phase {
	case PhaseDragging:
		// Both ends shift together, preserving the original duration.
		c.provStart = c.snap(timeline.AddDays(c.origStart, delta))
		c.provEnd = c.snap(timeline.AddDays(c.origEnd, delta))
	case PhaseResizingEnd:
		end := c.snap(timeline.AddDays(c.origEnd, delta))
		if end.Before(c.origStart) {
			return
		}
		c.provEnd = end
	case PhaseResizingStart:
		start := c.snap(timeline.AddDays(c.origStart, delta))
		if !start.Before(c.origEnd) {
			return
		}
		c.provStart = start
	}
}

// PointerUp commits the current provisional state and returns to idle.
// Releasing always commits, even when nothing moved; the second return is
// false only when no gesture was active.
func (c *Controller) PointerUp(x float64) (Commit, bool) {
	if c.phase == PhaseIdle {
		return Commit{}, false
	}
	c.PointerMove(x)

	commit := Commit{TaskID: c.taskID, Start: c.provStart, End: c.provEnd}
	switch c.phase {
	case PhaseDragging:
		commit.Kind = CommitMove
	case PhaseResizingStart:
		commit.Kind = CommitResizeStart
	case PhaseResizingEnd:
		commit.Kind = CommitResizeEnd
	}

	c.reset()
	return commit, true
}

// Cancel discards the gesture without committing, for component unmount.
func (c *Controller) Cancel() { c.reset() }

func (c *Controller) reset() {
	*c = Controller{cfg: c.cfg}
}

package gesture

import (
	"testing"
	"time"

	"github.com/akyairhashvil/gantterm/internal/timeline"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDragByExactlyOneWeek(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 40})
	start := date(2025, time.March, 3)
	end := date(2025, time.March, 7)

	c.BeginDrag(7, start, end, 100)
	c.PointerMove(100 + 280)

	ps, pe, ok := c.Provisional()
	if !ok {
		t.Fatalf("no provisional state during drag")
	}
	if !ps.Equal(timeline.AddDays(start, 7)) || !pe.Equal(timeline.AddDays(end, 7)) {
		t.Fatalf("provisional = %v..%v, want both shifted by 7 days", ps, pe)
	}
	// Duration preserved.
	if timeline.DaysBetween(ps, pe) != timeline.DaysBetween(start, end) {
		t.Fatalf("drag changed duration")
	}

	commit, ok := c.PointerUp(100 + 280)
	if !ok || commit.Kind != CommitMove || commit.TaskID != 7 {
		t.Fatalf("commit = %+v, ok = %v", commit, ok)
	}
	if !commit.Start.Equal(timeline.AddDays(start, 7)) {
		t.Fatalf("committed start = %v", commit.Start)
	}
	if c.Active() {
		t.Fatalf("controller still active after pointer-up")
	}
}

func TestDragRoundsToNearestDay(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 40})
	start := date(2025, time.March, 3)
	c.BeginDrag(1, start, start, 0)

	// 19px of a 40px day rounds down to zero days.
	c.PointerMove(19)
	ps, _, _ := c.Provisional()
	if !ps.Equal(start) {
		t.Fatalf("sub-half-day move shifted the bar")
	}
	// 21px rounds up to one day.
	c.PointerMove(21)
	ps, _, _ = c.Provisional()
	if !ps.Equal(timeline.AddDays(start, 1)) {
		t.Fatalf("past-half-day move did not shift")
	}
}

func TestResizeEndGuard(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 10})
	start := date(2025, time.June, 10)
	end := date(2025, time.June, 14)

	c.BeginResize(EdgeEnd, 3, start, end, 500)
	// Pull the end edge two days left: valid.
	c.PointerMove(480)
	_, pe, _ := c.Provisional()
	if !pe.Equal(date(2025, time.June, 12)) {
		t.Fatalf("end after valid shrink = %v", pe)
	}
	// Pull far past the start: rejected, last valid value kept.
	c.PointerMove(300)
	_, pe, _ = c.Provisional()
	if !pe.Equal(date(2025, time.June, 12)) {
		t.Fatalf("invalid shrink changed end to %v", pe)
	}
	// Shrinking to exactly the start day (a one-day task) is allowed.
	c.PointerMove(460)
	_, pe, _ = c.Provisional()
	if !pe.Equal(start) {
		t.Fatalf("one-day shrink rejected, end = %v", pe)
	}

	commit, ok := c.PointerUp(460)
	if !ok || commit.Kind != CommitResizeEnd || !commit.End.Equal(start) {
		t.Fatalf("commit = %+v", commit)
	}
}

func TestResizeStartGuard(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 10})
	start := date(2025, time.June, 10)
	end := date(2025, time.June, 14)

	c.BeginResize(EdgeStart, 3, start, end, 100)
	c.PointerMove(120)
	ps, _, _ := c.Provisional()
	if !ps.Equal(date(2025, time.June, 12)) {
		t.Fatalf("start after valid shrink = %v", ps)
	}
	// Crossing the end edge is rejected.
	c.PointerMove(200)
	ps, _, _ = c.Provisional()
	if !ps.Equal(date(2025, time.June, 12)) {
		t.Fatalf("invalid shrink moved start to %v", ps)
	}
}

func TestNoopReleaseStillCommits(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 40})
	start := date(2025, time.May, 1)
	end := date(2025, time.May, 3)

	c.BeginDrag(9, start, end, 50)
	commit, ok := c.PointerUp(50)
	if !ok {
		t.Fatalf("release without movement must still commit")
	}
	if !commit.Start.Equal(start) || !commit.End.Equal(end) {
		t.Fatalf("no-op commit altered dates: %+v", commit)
	}
}

func TestSnapDuringDrag(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 10, Snap: true, Granularity: timeline.GranularityWeek})
	// Wed Jul 9 .. Thu Jul 10, dragged 3 days right, snapped to week start.
	c.BeginDrag(4, date(2025, time.July, 9), date(2025, time.July, 10), 0)
	c.PointerMove(30)
	ps, pe, _ := c.Provisional()
	if !ps.Equal(date(2025, time.July, 7)) {
		t.Fatalf("snapped start = %v, want Monday Jul 7", ps)
	}
	if !pe.Equal(date(2025, time.July, 7)) {
		t.Fatalf("snapped end = %v, want Monday Jul 7", pe)
	}
}

func TestPointerUpWhileIdle(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 10})
	if _, ok := c.PointerUp(0); ok {
		t.Fatalf("idle pointer-up produced a commit")
	}
	if _, _, ok := c.Provisional(); ok {
		t.Fatalf("idle controller reports provisional state")
	}
}

func TestCancelDiscardsGesture(t *testing.T) {
	c := NewController(Config{PixelsPerDay: 10})
	c.BeginDrag(1, date(2025, time.May, 1), date(2025, time.May, 2), 0)
	c.Cancel()
	if c.Active() {
		t.Fatalf("cancel left the controller active")
	}
	if _, ok := c.PointerUp(0); ok {
		t.Fatalf("cancelled gesture still committed")
	}
}

func TestZeroPixelsPerDayIsInert(t *testing.T) {
	c := NewController(Config{})
	start := date(2025, time.May, 1)
	c.BeginDrag(1, start, start, 0)
	c.PointerMove(500)
	ps, _, _ := c.Provisional()
	if !ps.Equal(start) {
		t.Fatalf("zero scale moved the bar")
	}
}

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/database"
	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/timeline"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Project: models.Project{
			ID: 1, Name: "Test",
			StartDate: date(2025, time.January, 6),
			EndDate:   date(2025, time.February, 28),
		},
		Deliverables: []models.Deliverable{
			{ID: 1, Name: "Design", Tasks: []models.Task{
				{ID: 10, DeliverableID: 1, Name: "Wireframes",
					Status:    models.StatusInProgress,
					StartDate: date(2025, time.January, 8),
					EndDate:   date(2025, time.January, 14)},
				{ID: 11, DeliverableID: 1, Name: "Review",
					StartDate: date(2025, time.January, 15),
					EndDate:   date(2025, time.January, 16)},
			}},
			{ID: 2, Name: "Build", Tasks: []models.Task{
				{ID: 20, DeliverableID: 2, Name: "Implementation",
					StartDate: date(2025, time.January, 17),
					EndDate:   date(2025, time.February, 14)},
			}},
		},
	}
}

// newTestModel builds a loaded model backed by a mock store with default
// settings.
func newTestModel(t *testing.T) (GanttModel, *database.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	store := database.NewMockStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, fallback string) string {
			return fallback
		}).AnyTimes()

	m := NewGanttModel(context.Background(), store, 1)
	m.width = 120
	m.height = 30

	m.snap = testSnapshot()
	m.loaded = true
	m.rebuild()
	return m, store
}

func TestNewGanttModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.granularity != timeline.GranularityWeek {
		t.Fatalf("granularity = %v", m.granularity)
	}
	if !m.snapToGrid || !m.showWeekends || !m.showToday {
		t.Fatal("default toggles should be on")
	}
	if m.themeName != "default" {
		t.Fatalf("theme = %q", m.themeName)
	}
	if m.ppd != defaultZoom(timeline.GranularityWeek) {
		t.Fatalf("ppd = %v", m.ppd)
	}
}

func TestRebuildRowShape(t *testing.T) {
	m, _ := newTestModel(t)
	// 2 headers + 3 tasks.
	if got := len(m.lay.Rows); got != 5 {
		t.Fatalf("rows = %d, want 5", got)
	}
	if m.window.Start.IsZero() {
		t.Fatal("window not derived from project")
	}
}

func TestSnapshotMsgRebuilds(t *testing.T) {
	m, _ := newTestModel(t)
	snap := testSnapshot()
	snap.Deliverables = snap.Deliverables[:1]

	updated, _ := m.Update(snapshotMsg{snap: snap, collapsed: map[int64]bool{1: true}})
	got := updated.(GanttModel)
	if len(got.lay.Rows) != 1 {
		t.Fatalf("rows after collapse = %d, want 1", len(got.lay.Rows))
	}
}

func TestCommitErrorSurfacesAndReloads(t *testing.T) {
	m, store := newTestModel(t)
	store.EXPECT().LoadSnapshot(gomock.Any(), int64(1)).Return(testSnapshot(), nil)
	store.EXPECT().CollapsedDeliverables(gomock.Any(), int64(1)).Return(map[int64]bool{}, nil)

	updated, cmd := m.Update(commitResultMsg{err: context.DeadlineExceeded})
	got := updated.(GanttModel)
	if !got.statusErr || got.statusMsg == "" {
		t.Fatal("commit error not surfaced in status line")
	}
	if cmd == nil {
		t.Fatal("expected reload command after failed commit")
	}
	if _, ok := cmd().(snapshotMsg); !ok {
		t.Fatal("reload command did not produce a snapshot message")
	}
}

func TestBuildSceneUsesProvisionalDates(t *testing.T) {
	m, _ := newTestModel(t)
	task := m.snap.Deliverables[0].Tasks[0]

	x := timeline.DateToX(task.StartDate, m.window.Start, m.ppd) + m.ppd
	m.drag.BeginDrag(task.ID, task.StartDate, task.EndDate, x)
	m.drag.PointerMove(x + 7*m.ppd)

	scene := m.buildScene()
	start, _, ok := m.drag.Provisional()
	if !ok || start.Equal(task.StartDate) {
		t.Fatalf("provisional start did not move: %v", start)
	}
	wantX := timeline.DateToX(start, m.window.Start, m.ppd)

	found := false
	for _, r := range scene.RectsOn(compose.LayerBar) {
		if r.X == wantX && r.Opacity == 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("scene bar did not move to the provisional position")
	}
}

func TestSettingsPersistOnZoom(t *testing.T) {
	m, store := newTestModel(t)
	store.EXPECT().SetSetting(gomock.Any(), config.SettingPixelsPerDay, gomock.Any()).Return(nil)

	updated, cmd := m.setZoom(m.ppd * 1.25)
	got := updated.(GanttModel)
	if got.ppd <= m.ppd {
		t.Fatalf("zoom did not increase: %v -> %v", m.ppd, got.ppd)
	}
	if cmd == nil {
		t.Fatal("expected persist command")
	}
	cmd()
}

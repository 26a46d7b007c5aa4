package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/util"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedFixture creates one project with two deliverables, three tasks, a
// dependency, a resource and a highlight, returning the IDs needed by
// the tests.
func seedFixture(t *testing.T, db *Database) (projectID int64, taskIDs []int64) {
	t.Helper()
	ctx := context.Background()

	projectID, err := db.CreateProject(ctx, models.Project{
		Name: "Test Project", Status: models.StatusInProgress,
		StartDate: date(2025, time.January, 1), EndDate: date(2025, time.March, 31),
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	d1, err := db.CreateDeliverable(ctx, models.Deliverable{
		ProjectID: projectID, Name: "Design", Colour: "#38bdf8", SortOrder: 0,
	})
	if err != nil {
		t.Fatalf("CreateDeliverable: %v", err)
	}
	d2, err := db.CreateDeliverable(ctx, models.Deliverable{
		ProjectID: projectID, Name: "Build", SortOrder: 1,
	})
	if err != nil {
		t.Fatalf("CreateDeliverable: %v", err)
	}

	specs := []struct {
		deliverable int64
		name        string
		start, end  time.Time
	}{
		{d1, "Wireframes", date(2025, time.January, 6), date(2025, time.January, 10)},
		{d1, "Review", date(2025, time.January, 13), date(2025, time.January, 13)},
		{d2, "Implementation", date(2025, time.January, 14), date(2025, time.February, 7)},
	}
	for i, s := range specs {
		task := models.Task{
			DeliverableID: s.deliverable, ProjectID: projectID,
			Name: s.name, Status: models.StatusNotStarted,
			StartDate: s.start, EndDate: s.end, EstimatedHours: 10,
		}
		if i == 0 {
			task.Description = util.Ptr("Initial sketches")
		}
		id, err := db.CreateTask(ctx, task)
		if err != nil {
			t.Fatalf("CreateTask %q: %v", s.name, err)
		}
		taskIDs = append(taskIDs, id)
	}

	if err := db.AddDependency(ctx, taskIDs[2], taskIDs[1]); err != nil {
		t.Fatalf("AddDependency: %v", err)
	}
	if _, err := db.AssignResource(ctx, models.ResourceAssignment{
		TaskID: taskIDs[0], ResourceName: "Dana", ResourceType: models.ResourcePerson,
		AllocatedHours: 20, HourlyRate: 95,
	}); err != nil {
		t.Fatalf("AssignResource: %v", err)
	}
	if _, err := db.CreateHighlight(ctx, models.Highlight{
		ProjectID: projectID, Name: "Offsite",
		StartDate: date(2025, time.January, 20), EndDate: date(2025, time.January, 21),
		Colour: "#f59e0b", ShowLabel: true, LabelPosition: models.LabelTop,
	}); err != nil {
		t.Fatalf("CreateHighlight: %v", err)
	}
	return projectID, taskIDs
}

func TestLoadSnapshot(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, taskIDs := seedFixture(t, db)

	snap, err := db.LoadSnapshot(ctx, projectID)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap.Project.Name != "Test Project" {
		t.Fatalf("project name = %q", snap.Project.Name)
	}
	if len(snap.Deliverables) != 2 {
		t.Fatalf("deliverables = %d, want 2", len(snap.Deliverables))
	}
	if snap.Deliverables[0].Name != "Design" || snap.Deliverables[1].Name != "Build" {
		t.Fatalf("deliverables out of order: %q, %q",
			snap.Deliverables[0].Name, snap.Deliverables[1].Name)
	}
	if got := snap.TaskCount(); got != 3 {
		t.Fatalf("TaskCount = %d, want 3", got)
	}

	wire := snap.Deliverables[0].Tasks[0]
	if !wire.StartDate.Equal(date(2025, time.January, 6)) {
		t.Fatalf("start date round trip: %v", wire.StartDate)
	}
	if len(wire.Resources) != 1 || wire.Resources[0].ResourceName != "Dana" {
		t.Fatalf("resources not attached: %+v", wire.Resources)
	}
	if util.Deref(wire.Description) != "Initial sketches" {
		t.Fatalf("description round trip: %v", wire.Description)
	}

	impl := snap.Deliverables[1].Tasks[0]
	if len(impl.DependsOn) != 1 || impl.DependsOn[0] != taskIDs[1] {
		t.Fatalf("dependency not attached: %v", impl.DependsOn)
	}

	if len(snap.Highlights) != 1 || snap.Highlights[0].Name != "Offsite" {
		t.Fatalf("highlights: %+v", snap.Highlights)
	}
}

func TestLoadSnapshotMissingProject(t *testing.T) {
	db := testDB(t)
	_, err := db.LoadSnapshot(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMoveTaskPreservesDuration(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, taskIDs := seedFixture(t, db)

	newStart := date(2025, time.January, 13)
	newEnd := date(2025, time.January, 17)
	if err := db.MoveTask(ctx, taskIDs[0], newStart, newEnd); err != nil {
		t.Fatalf("MoveTask: %v", err)
	}

	snap, err := db.LoadSnapshot(ctx, projectID)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	moved := snap.Deliverables[0].Tasks[0]
	if !moved.StartDate.Equal(newStart) || !moved.EndDate.Equal(newEnd) {
		t.Fatalf("dates = %v..%v", moved.StartDate, moved.EndDate)
	}
}

func TestMoveTaskRejectsInvertedDates(t *testing.T) {
	db := testDB(t)
	_, taskIDs := seedFixture(t, db)

	err := db.MoveTask(context.Background(), taskIDs[0],
		date(2025, time.January, 10), date(2025, time.January, 6))
	if !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("want ErrInvalidDates, got %v", err)
	}
}

func TestResizeTaskEnd(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, taskIDs := seedFixture(t, db)

	// Shrink to a one-day task: end equal to start is allowed.
	if err := db.ResizeTaskEnd(ctx, taskIDs[0], date(2025, time.January, 6)); err != nil {
		t.Fatalf("ResizeTaskEnd: %v", err)
	}
	snap, _ := db.LoadSnapshot(ctx, projectID)
	got := snap.Deliverables[0].Tasks[0]
	if !got.EndDate.Equal(date(2025, time.January, 6)) {
		t.Fatalf("end = %v", got.EndDate)
	}
	if !got.StartDate.Equal(date(2025, time.January, 6)) {
		t.Fatalf("start moved: %v", got.StartDate)
	}

	// Crossing below the start is rejected.
	err := db.ResizeTaskEnd(ctx, taskIDs[0], date(2025, time.January, 5))
	if !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("want ErrInvalidDates, got %v", err)
	}
}

func TestResizeTaskStart(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, taskIDs := seedFixture(t, db)

	if err := db.ResizeTaskStart(ctx, taskIDs[2], date(2025, time.January, 20)); err != nil {
		t.Fatalf("ResizeTaskStart: %v", err)
	}
	snap, _ := db.LoadSnapshot(ctx, projectID)
	got := snap.Deliverables[1].Tasks[0]
	if !got.StartDate.Equal(date(2025, time.January, 20)) {
		t.Fatalf("start = %v", got.StartDate)
	}
	if !got.EndDate.Equal(date(2025, time.February, 7)) {
		t.Fatalf("end moved: %v", got.EndDate)
	}

	err := db.ResizeTaskStart(ctx, taskIDs[2], date(2025, time.February, 8))
	if !errors.Is(err, ErrInvalidDates) {
		t.Fatalf("want ErrInvalidDates, got %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, taskIDs := seedFixture(t, db)

	if err := db.UpdateTaskStatus(ctx, taskIDs[0], models.StatusBlocked); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	snap, _ := db.LoadSnapshot(ctx, projectID)
	if got := snap.Deliverables[0].Tasks[0].Status; got != models.StatusBlocked {
		t.Fatalf("status = %q", got)
	}

	err := db.UpdateTaskStatus(ctx, 999, models.StatusBlocked)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCollapseRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	projectID, _ := seedFixture(t, db)

	snap, _ := db.LoadSnapshot(ctx, projectID)
	d1 := snap.Deliverables[0].ID

	if err := db.SetCollapsed(ctx, d1, true); err != nil {
		t.Fatalf("SetCollapsed: %v", err)
	}
	collapsed, err := db.CollapsedDeliverables(ctx, projectID)
	if err != nil {
		t.Fatalf("CollapsedDeliverables: %v", err)
	}
	if !collapsed[d1] || len(collapsed) != 1 {
		t.Fatalf("collapsed = %v", collapsed)
	}

	if err := db.SetCollapsed(ctx, d1, false); err != nil {
		t.Fatalf("SetCollapsed: %v", err)
	}
	collapsed, _ = db.CollapsedDeliverables(ctx, projectID)
	if len(collapsed) != 0 {
		t.Fatalf("collapsed after expand = %v", collapsed)
	}
}

func TestSettings(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if got := db.GetSetting(ctx, "theme", "default"); got != "default" {
		t.Fatalf("fallback = %q", got)
	}
	if err := db.SetSetting(ctx, "theme", "midnight"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if got := db.GetSetting(ctx, "theme", "default"); got != "midnight" {
		t.Fatalf("setting = %q", got)
	}
	if err := db.SetSetting(ctx, "theme", "paper"); err != nil {
		t.Fatalf("SetSetting upsert: %v", err)
	}
	if got := db.GetSetting(ctx, "theme", "default"); got != "paper" {
		t.Fatalf("upsert = %q", got)
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	id1, err := db.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	id2, err := db.Seed(ctx)
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("seed project id changed: %d != %d", id1, id2)
	}

	projects, err := db.GetProjects(ctx)
	if err != nil {
		t.Fatalf("GetProjects: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}

	snap, err := db.LoadSnapshot(ctx, id1)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(snap.Deliverables) != 3 || snap.TaskCount() != 7 {
		t.Fatalf("seed shape: %d deliverables, %d tasks",
			len(snap.Deliverables), snap.TaskCount())
	}
}

package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/timeline"
)

// Seed creates a demo project on first run so the chart is never empty.
// It is a no-op when any project already exists.
func (db *Database) Seed(ctx context.Context) (int64, error) {
	var count int
	if err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return 0, &OpError{Op: "seed", Resource: "projects", Err: err}
	}
	if count > 0 {
		var id int64
		err := db.sql.QueryRowContext(ctx, "SELECT id FROM projects ORDER BY id LIMIT 1").Scan(&id)
		return id, err
	}

	today := timeline.DayStart(time.Now())
	projectID, err := db.CreateProject(ctx, models.Project{
		Name:      "Sample Launch",
		Status:    models.StatusInProgress,
		StartDate: timeline.AddDays(today, -14),
		EndDate:   timeline.AddDays(today, 42),
	})
	if err != nil {
		return 0, err
	}

	type seedTask struct {
		name             string
		status           models.TaskStatus
		startOffset      int
		days             int
		estimated, spent float64
	}
	groups := []struct {
		name   string
		colour string
		tasks  []seedTask
	}{
		{"Discovery", "", []seedTask{
			{"Stakeholder interviews", models.StatusCompleted, -14, 5, 20, 20},
			{"Requirements draft", models.StatusCompleted, -8, 4, 16, 18},
		}},
		{"Build", "", []seedTask{
			{"Core engine", models.StatusInProgress, -3, 14, 80, 35},
			{"Integrations", models.StatusNotStarted, 8, 10, 40, 0},
			{"Hardening", models.StatusNotStarted, 18, 7, 24, 0},
		}},
		{"Release", "", []seedTask{
			{"Beta rollout", models.StatusNotStarted, 26, 7, 16, 0},
			{"Launch", models.StatusNotStarted, 34, 3, 8, 0},
		}},
	}

	var prevID int64
	for gi, g := range groups {
		deliverableID, err := db.CreateDeliverable(ctx, models.Deliverable{
			ProjectID: projectID,
			Name:      g.name,
			Status:    models.StatusInProgress,
			Colour:    g.colour,
			SortOrder: gi,
		})
		if err != nil {
			return 0, err
		}
		for ti, st := range g.tasks {
			start := timeline.AddDays(today, st.startOffset)
			taskID, err := db.CreateTask(ctx, models.Task{
				DeliverableID:  deliverableID,
				ProjectID:      projectID,
				Name:           st.name,
				Status:         st.status,
				StartDate:      start,
				EndDate:        timeline.AddDays(start, st.days-1),
				EstimatedHours: st.estimated,
				ActualHours:    st.spent,
				SortOrder:      ti,
			})
			if err != nil {
				return 0, err
			}
			if prevID != 0 {
				if err := db.AddDependency(ctx, taskID, prevID); err != nil {
					return 0, err
				}
			}
			prevID = taskID
		}
	}

	_, err = db.CreateHighlight(ctx, models.Highlight{
		ProjectID: projectID,
		Name:      "Code freeze",
		StartDate: timeline.AddDays(today, 24),
		EndDate:   timeline.AddDays(today, 25),
		Colour:    "#f59e0b",
		ShowLabel: true,
	})
	return projectID, err
}

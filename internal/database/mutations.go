package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
	"github.com/akyairhashvil/gantterm/internal/util"
)

// MoveTask shifts both dates of a task, preserving its duration. Dates
// are validated at this boundary so an inverted pair never reaches the
// rendering core.
func (db *Database) MoveTask(ctx context.Context, taskID int64, start, end time.Time) error {
	if end.Before(start) {
		return &OpError{Op: "move", Resource: "task", ID: taskID, Err: ErrInvalidDates}
	}
	return db.updateTaskDates(ctx, "move", taskID, formatDate(start), formatDate(end))
}

// ResizeTaskEnd updates a task's end date only. A one-day task
// (end == start) is the smallest allowed result.
func (db *Database) ResizeTaskEnd(ctx context.Context, taskID int64, end time.Time) error {
	start, _, err := db.taskDates(ctx, taskID)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return &OpError{Op: "resize", Resource: "task", ID: taskID, Err: ErrInvalidDates}
	}
	return db.updateTaskDates(ctx, "resize", taskID, formatDate(start), formatDate(end))
}

// ResizeTaskStart updates a task's start date only.
func (db *Database) ResizeTaskStart(ctx context.Context, taskID int64, start time.Time) error {
	_, end, err := db.taskDates(ctx, taskID)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return &OpError{Op: "resize", Resource: "task", ID: taskID, Err: ErrInvalidDates}
	}
	return db.updateTaskDates(ctx, "resize", taskID, formatDate(start), formatDate(end))
}

func (db *Database) taskDates(ctx context.Context, taskID int64) (time.Time, time.Time, error) {
	var start, end string
	err := db.sql.QueryRowContext(ctx,
		"SELECT start_date, end_date FROM tasks WHERE id = ?", taskID).Scan(&start, &end)
	if err != nil {
		return time.Time{}, time.Time{}, &OpError{Op: "load", Resource: "task", ID: taskID, Err: err}
	}
	return parseDate(start), parseDate(end), nil
}

func (db *Database) updateTaskDates(ctx context.Context, op string, taskID int64, start, end string) error {
	res, err := db.sql.ExecContext(ctx,
		"UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?", start, end, taskID)
	if err != nil {
		return &OpError{Op: op, Resource: "task", ID: taskID, Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &OpError{Op: op, Resource: "task", ID: taskID, Err: ErrNotFound}
	}
	return nil
}

// UpdateTaskStatus sets a task's lifecycle status.
func (db *Database) UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus) error {
	res, err := db.sql.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ?", status, taskID)
	if err != nil {
		return &OpError{Op: "update", Resource: "task", ID: taskID, Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &OpError{Op: "update", Resource: "task", ID: taskID, Err: ErrNotFound}
	}
	return nil
}

// SetCollapsed persists a deliverable's collapse state.
func (db *Database) SetCollapsed(ctx context.Context, deliverableID int64, collapsed bool) error {
	_, err := db.sql.ExecContext(ctx,
		"UPDATE deliverables SET collapsed = ? WHERE id = ?", util.BoolToInt(collapsed), deliverableID)
	if err != nil {
		return &OpError{Op: "update", Resource: "deliverable", ID: deliverableID, Err: err}
	}
	return nil
}

// CreateProject inserts a project and returns its ID.
func (db *Database) CreateProject(ctx context.Context, p models.Project) (int64, error) {
	res, err := db.sql.ExecContext(ctx,
		"INSERT INTO projects (name, status, start_date, end_date) VALUES (?, ?, ?, ?)",
		p.Name, p.Status, formatDate(p.StartDate), formatDate(p.EndDate))
	if err != nil {
		return 0, &OpError{Op: "create", Resource: "project", Err: err}
	}
	return res.LastInsertId()
}

// CreateDeliverable inserts a deliverable and returns its ID.
func (db *Database) CreateDeliverable(ctx context.Context, d models.Deliverable) (int64, error) {
	res, err := db.sql.ExecContext(ctx,
		`INSERT INTO deliverables (project_id, name, status, percent_complete, colour, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ProjectID, d.Name, d.Status, d.PercentComplete, d.Colour, d.SortOrder)
	if err != nil {
		return 0, &OpError{Op: "create", Resource: "deliverable", Err: err}
	}
	return res.LastInsertId()
}

// CreateTask inserts a task and returns its ID.
func (db *Database) CreateTask(ctx context.Context, t models.Task) (int64, error) {
	if t.EndDate.Before(t.StartDate) {
		return 0, &OpError{Op: "create", Resource: "task", Err: ErrInvalidDates}
	}
	res, err := db.sql.ExecContext(ctx,
		`INSERT INTO tasks (deliverable_id, project_id, name, description, status,
		                    start_date, end_date, estimated_hours, actual_hours,
		                    cost_estimated, cost_actual, colour, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.DeliverableID, t.ProjectID, t.Name, t.Description, t.Status,
		formatDate(t.StartDate), formatDate(t.EndDate),
		t.EstimatedHours, t.ActualHours, t.CostEstimated, t.CostActual,
		t.Colour, t.SortOrder)
	if err != nil {
		return 0, &OpError{Op: "create", Resource: "task", Err: err}
	}
	return res.LastInsertId()
}

// CreateHighlight inserts a highlight and returns its ID.
func (db *Database) CreateHighlight(ctx context.Context, h models.Highlight) (int64, error) {
	if h.EndDate.Before(h.StartDate) {
		return 0, &OpError{Op: "create", Resource: "highlight", Err: ErrInvalidDates}
	}
	res, err := db.sql.ExecContext(ctx,
		`INSERT INTO highlights (project_id, name, start_date, end_date, colour,
		                         opacity, show_label, label_position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ProjectID, h.Name, formatDate(h.StartDate), formatDate(h.EndDate),
		h.Colour, h.Opacity, h.ShowLabel, h.LabelPosition)
	if err != nil {
		return 0, &OpError{Op: "create", Resource: "highlight", Err: err}
	}
	return res.LastInsertId()
}

// AddDependency records that taskID depends on dependsOn.
func (db *Database) AddDependency(ctx context.Context, taskID, dependsOn int64) error {
	_, err := db.sql.ExecContext(ctx,
		"INSERT OR IGNORE INTO task_dependencies (task_id, depends_on) VALUES (?, ?)",
		taskID, dependsOn)
	if err != nil {
		return &OpError{Op: "create", Resource: "dependency", ID: taskID, Err: err}
	}
	return nil
}

// AssignResource attaches a resource to a task and returns the row ID.
func (db *Database) AssignResource(ctx context.Context, a models.ResourceAssignment) (int64, error) {
	res, err := db.sql.ExecContext(ctx,
		`INSERT INTO resources (task_id, resource_name, resource_type,
		                        allocated_hours, actual_hours, hourly_rate)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.TaskID, a.ResourceName, a.ResourceType,
		a.AllocatedHours, a.ActualHours, a.HourlyRate)
	if err != nil {
		return 0, &OpError{Op: "create", Resource: "resource", Err: err}
	}
	return res.LastInsertId()
}

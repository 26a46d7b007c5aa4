package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/gantterm/internal/models"
)

// GetProjects lists all projects, oldest first.
func (db *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := db.sql.QueryContext(ctx,
		"SELECT id, name, status, start_date, end_date FROM projects ORDER BY id")
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "projects", Err: err}
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var start, end string
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &start, &end); err != nil {
			return nil, &OpError{Op: "scan", Resource: "project", Err: err}
		}
		p.StartDate = parseDate(start)
		p.EndDate = parseDate(end)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// LoadSnapshot assembles the full render-pass view of one project:
// deliverables with their tasks (dependencies and resources attached)
// plus highlights. The returned value is never mutated by callers.
func (db *Database) LoadSnapshot(ctx context.Context, projectID int64) (models.Snapshot, error) {
	var snap models.Snapshot

	var start, end string
	err := db.sql.QueryRowContext(ctx,
		"SELECT id, name, status, start_date, end_date FROM projects WHERE id = ?",
		projectID).Scan(&snap.Project.ID, &snap.Project.Name, &snap.Project.Status, &start, &end)
	if err == sql.ErrNoRows {
		return snap, &OpError{Op: "load", Resource: "project", ID: projectID, Err: ErrNotFound}
	}
	if err != nil {
		return snap, &OpError{Op: "load", Resource: "project", ID: projectID, Err: err}
	}
	snap.Project.StartDate = parseDate(start)
	snap.Project.EndDate = parseDate(end)

	deliverables, err := db.loadDeliverables(ctx, projectID)
	if err != nil {
		return snap, err
	}
	tasks, err := db.loadTasks(ctx, projectID)
	if err != nil {
		return snap, err
	}
	for i := range deliverables {
		for _, t := range tasks[deliverables[i].ID] {
			deliverables[i].Tasks = append(deliverables[i].Tasks, t)
		}
	}
	snap.Deliverables = deliverables

	snap.Highlights, err = db.loadHighlights(ctx, projectID)
	return snap, err
}

func (db *Database) loadDeliverables(ctx context.Context, projectID int64) ([]models.Deliverable, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, project_id, name, status, percent_complete, colour, sort_order
		 FROM deliverables WHERE project_id = ? ORDER BY sort_order, id`, projectID)
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "deliverables", Err: err}
	}
	defer rows.Close()

	var out []models.Deliverable
	for rows.Next() {
		var d models.Deliverable
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.Status,
			&d.PercentComplete, &d.Colour, &d.SortOrder); err != nil {
			return nil, &OpError{Op: "scan", Resource: "deliverable", Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *Database) loadTasks(ctx context.Context, projectID int64) (map[int64][]models.Task, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, deliverable_id, project_id, name, description, status,
		        start_date, end_date, estimated_hours, actual_hours,
		        cost_estimated, cost_actual, colour, sort_order
		 FROM tasks WHERE project_id = ? ORDER BY sort_order, id`, projectID)
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "tasks", Err: err}
	}
	defer rows.Close()

	var ordered []*models.Task
	byID := make(map[int64]*models.Task)
	for rows.Next() {
		t := new(models.Task)
		var start, end string
		if err := rows.Scan(&t.ID, &t.DeliverableID, &t.ProjectID, &t.Name,
			&t.Description, &t.Status, &start, &end,
			&t.EstimatedHours, &t.ActualHours,
			&t.CostEstimated, &t.CostActual, &t.Colour, &t.SortOrder); err != nil {
			return nil, &OpError{Op: "scan", Resource: "task", Err: err}
		}
		t.StartDate = parseDate(start)
		t.EndDate = parseDate(end)
		ordered = append(ordered, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.attachDependencies(ctx, projectID, byID); err != nil {
		return nil, err
	}
	if err := db.attachResources(ctx, projectID, byID); err != nil {
		return nil, err
	}

	byDeliverable := make(map[int64][]models.Task)
	for _, t := range ordered {
		byDeliverable[t.DeliverableID] = append(byDeliverable[t.DeliverableID], *t)
	}
	return byDeliverable, nil
}

func (db *Database) attachDependencies(ctx context.Context, projectID int64, byID map[int64]*models.Task) error {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT d.task_id, d.depends_on FROM task_dependencies d
		 JOIN tasks t ON t.id = d.task_id WHERE t.project_id = ?`, projectID)
	if err != nil {
		return &OpError{Op: "list", Resource: "dependencies", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, dependsOn int64
		if err := rows.Scan(&taskID, &dependsOn); err != nil {
			return &OpError{Op: "scan", Resource: "dependency", Err: err}
		}
		if t, ok := byID[taskID]; ok {
			t.DependsOn = append(t.DependsOn, dependsOn)
		}
	}
	return rows.Err()
}

func (db *Database) attachResources(ctx context.Context, projectID int64, byID map[int64]*models.Task) error {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT r.id, r.task_id, r.resource_name, r.resource_type,
		        r.allocated_hours, r.actual_hours, r.hourly_rate
		 FROM resources r JOIN tasks t ON t.id = r.task_id
		 WHERE t.project_id = ? ORDER BY r.id`, projectID)
	if err != nil {
		return &OpError{Op: "list", Resource: "resources", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var a models.ResourceAssignment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.ResourceName, &a.ResourceType,
			&a.AllocatedHours, &a.ActualHours, &a.HourlyRate); err != nil {
			return &OpError{Op: "scan", Resource: "resource", Err: err}
		}
		if t, ok := byID[a.TaskID]; ok {
			t.Resources = append(t.Resources, a)
		}
	}
	return rows.Err()
}

func (db *Database) loadHighlights(ctx context.Context, projectID int64) ([]models.Highlight, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, project_id, name, start_date, end_date, colour, opacity,
		        show_label, label_position
		 FROM highlights WHERE project_id = ? ORDER BY start_date, id`, projectID)
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "highlights", Err: err}
	}
	defer rows.Close()

	var out []models.Highlight
	for rows.Next() {
		var h models.Highlight
		var start, end string
		if err := rows.Scan(&h.ID, &h.ProjectID, &h.Name, &start, &end,
			&h.Colour, &h.Opacity, &h.ShowLabel, &h.LabelPosition); err != nil {
			return nil, &OpError{Op: "scan", Resource: "highlight", Err: err}
		}
		h.StartDate = parseDate(start)
		h.EndDate = parseDate(end)
		out = append(out, h)
	}
	return out, rows.Err()
}

// CollapsedDeliverables returns the IDs of deliverables whose task rows
// are hidden.
func (db *Database) CollapsedDeliverables(ctx context.Context, projectID int64) (map[int64]bool, error) {
	rows, err := db.sql.QueryContext(ctx,
		"SELECT id FROM deliverables WHERE project_id = ? AND collapsed = 1", projectID)
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "collapsed", Err: err}
	}
	defer rows.Close()

	collapsed := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, &OpError{Op: "scan", Resource: "collapsed", Err: err}
		}
		collapsed[id] = true
	}
	return collapsed, rows.Err()
}

package models

import "time"

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	StatusNotStarted  TaskStatus = "not_started"
	StatusInProgress  TaskStatus = "in_progress"
	StatusUnderReview TaskStatus = "under_review"
	StatusBlocked     TaskStatus = "blocked"
	StatusCompleted   TaskStatus = "completed"
)

// ResourceType distinguishes people from custom (non-person) resources.
type ResourceType string

const (
	ResourcePerson ResourceType = "person"
	ResourceCustom ResourceType = "custom"
)

// Project is the top-level container for deliverables and tasks.
type Project struct {
	ID        int64
	Name      string
	Status    TaskStatus
	StartDate time.Time
	EndDate   time.Time
}

// Deliverable is a named grouping of tasks with its own status and
// completion percentage. Colour may be empty, in which case the theme
// palette assigns one by position.
type Deliverable struct {
	ID              int64
	ProjectID       int64
	Name            string
	Status          TaskStatus
	PercentComplete float64
	Colour          string
	SortOrder       int
	Tasks           []Task
}

// Task is a schedulable unit of work. EndDate is inclusive and is
// expected to be >= StartDate; the boundary validator enforces this
// before a task ever reaches the rendering core.
type Task struct {
	ID             int64
	DeliverableID  int64
	ProjectID      int64
	Name           string
	Description    *string
	Status         TaskStatus
	StartDate      time.Time
	EndDate        time.Time
	EstimatedHours float64
	ActualHours    float64
	CostEstimated  float64
	CostActual     float64
	Colour         string
	SortOrder      int
	DependsOn      []int64
	Resources      []ResourceAssignment
}

// ResourceAssignment attaches a person or a custom resource to a task.
// Exactly one of the two kinds is set, identified by ResourceType.
type ResourceAssignment struct {
	ID             int64
	TaskID         int64
	ResourceName   string
	ResourceType   ResourceType
	AllocatedHours float64
	ActualHours    float64
	HourlyRate     float64
}

// LabelPosition places a highlight label at the top or bottom of its band.
type LabelPosition string

const (
	LabelTop    LabelPosition = "top"
	LabelBottom LabelPosition = "bottom"
)

// Highlight is a named date range (holiday, break, milestone marker)
// rendered as a vertical band spanning the full canvas height.
type Highlight struct {
	ID            int64
	ProjectID     int64
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	Colour        string
	Opacity       float64
	ShowLabel     bool
	LabelPosition LabelPosition
}

// Snapshot is one immutable render-pass view of a project. The core never
// mutates a snapshot; gestures emit change requests toward the store and
// the caller re-supplies a fresh snapshot afterwards.
type Snapshot struct {
	Project      Project
	Deliverables []Deliverable
	Highlights   []Highlight
}

// Progress returns actual/estimated effort clamped to [0, 1].
func (t Task) Progress() float64 {
	if t.EstimatedHours <= 0 {
		return 0
	}
	p := t.ActualHours / t.EstimatedHours
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// TaskCount returns the total number of tasks across all deliverables.
func (s Snapshot) TaskCount() int {
	n := 0
	for _, d := range s.Deliverables {
		n += len(d.Tasks)
	}
	return n
}

package database

//go:generate mockgen -source=interface.go -destination=mock_store.go -package=database

import (
	"context"
	"time"

	"github.com/akyairhashvil/gantterm/internal/models"
)

// Store is the persistence surface the TUI depends on. *Database
// satisfies it; tests substitute the generated MockStore.
type Store interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	LoadSnapshot(ctx context.Context, projectID int64) (models.Snapshot, error)
	CollapsedDeliverables(ctx context.Context, projectID int64) (map[int64]bool, error)

	MoveTask(ctx context.Context, taskID int64, start, end time.Time) error
	ResizeTaskEnd(ctx context.Context, taskID int64, end time.Time) error
	ResizeTaskStart(ctx context.Context, taskID int64, start time.Time) error
	UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus) error
	SetCollapsed(ctx context.Context, deliverableID int64, collapsed bool) error

	GetSetting(ctx context.Context, key, fallback string) string
	SetSetting(ctx context.Context, key, value string) error
}

var _ Store = (*Database)(nil)

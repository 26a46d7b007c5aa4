// Package database is the persistence collaborator behind the Gantt
// view: it serves immutable project snapshots and accepts the commit
// requests (move, resize, status change) the gesture layer emits.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dateFormat = "2006-01-02"

// Database wraps the sqlite connection.
type Database struct {
	sql *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema is current.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	db := &Database{sql: conn}
	if err := db.createTables(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection.
func (db *Database) Close() error {
	return db.sql.Close()
}

func (db *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			status TEXT DEFAULT 'not_started',
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS deliverables (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			status TEXT DEFAULT 'not_started',
			percent_complete REAL DEFAULT 0,
			colour TEXT DEFAULT '',
			sort_order INTEGER DEFAULT 0,
			collapsed INTEGER DEFAULT 0,
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			deliverable_id INTEGER NOT NULL,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			status TEXT DEFAULT 'not_started',
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			estimated_hours REAL DEFAULT 0,
			actual_hours REAL DEFAULT 0,
			cost_estimated REAL DEFAULT 0,
			cost_actual REAL DEFAULT 0,
			colour TEXT DEFAULT '',
			sort_order INTEGER DEFAULT 0,
			FOREIGN KEY(deliverable_id) REFERENCES deliverables(id),
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS task_dependencies (
			task_id INTEGER NOT NULL,
			depends_on INTEGER NOT NULL,
			PRIMARY KEY(task_id, depends_on),
			FOREIGN KEY(task_id) REFERENCES tasks(id),
			FOREIGN KEY(depends_on) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			resource_name TEXT NOT NULL,
			resource_type TEXT NOT NULL CHECK(resource_type IN ('person', 'custom')),
			allocated_hours REAL DEFAULT 0,
			actual_hours REAL DEFAULT 0,
			hourly_rate REAL DEFAULT 0,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS highlights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			colour TEXT DEFAULT '#f59e0b',
			opacity REAL DEFAULT 0,
			show_label INTEGER DEFAULT 1,
			label_position TEXT DEFAULT 'top',
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, q := range queries {
		if _, err := db.sql.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	db.migrate(ctx)
	return nil
}

// migrate applies additive schema changes for databases created by older
// builds. Failures are ignored: the column already exists.
func (db *Database) migrate(ctx context.Context) {
	_, _ = db.sql.ExecContext(ctx, "ALTER TABLE deliverables ADD COLUMN collapsed INTEGER DEFAULT 0")
	_, _ = db.sql.ExecContext(ctx, "ALTER TABLE highlights ADD COLUMN label_position TEXT DEFAULT 'top'")
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetSetting returns a persisted view setting, or fallback when unset.
func (db *Database) GetSetting(ctx context.Context, key, fallback string) string {
	var value string
	err := db.sql.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return fallback
	}
	return value
}

// SetSetting upserts a view setting.
func (db *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := db.sql.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return &OpError{Op: "set", Resource: "setting", Err: err}
	}
	return nil
}

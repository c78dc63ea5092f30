package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// schema is written once for both dialects; {{...}} markers are replaced by
// Dialect.ddl. No foreign keys: tasks.user_id and friends are plain values.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id {{uuid}} PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		avatar_url TEXT,
		phone TEXT,
		department TEXT,
		hire_date DATE,
		role TEXT NOT NULL DEFAULT 'member' CHECK (role IN ('admin', 'member', 'project_manager')),
		is_active {{bool}} NOT NULL DEFAULT {{true}},
		user_id TEXT,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id {{uuid}} PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		is_active {{bool}} NOT NULL DEFAULT {{true}},
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS project_managers (
		id {{uuid}} PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		department TEXT,
		is_active {{bool}} NOT NULL DEFAULT {{true}},
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id {{uuid}} PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		client_name TEXT,
		start_date DATE,
		expected_end_date DATE,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'completed', 'on_hold', 'cancelled')),
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id {{uuid}} PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_by TEXT NOT NULL,
		task_name TEXT NOT NULL CHECK (length(task_name) > 0),
		description TEXT,
		due_date DATE NOT NULL,
		completed_at {{ts}},
		priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'in_progress', 'completed', 'blocked', 'cancelled')),
		estimated_hours {{real}} NOT NULL DEFAULT 0,
		actual_hours {{real}} NOT NULL DEFAULT 0,
		tags {{json}} NOT NULL DEFAULT '[]',
		attachments {{json}} NOT NULL DEFAULT '[]',
		project_id TEXT,
		progress INTEGER NOT NULL DEFAULT 0,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leaves (
		id {{uuid}} PRIMARY KEY,
		user_id TEXT NOT NULL,
		leave_date DATE,
		from_date DATE,
		to_date DATE,
		end_date DATE,
		leave_type TEXT NOT NULL CHECK (leave_type IN ('sick', 'casual', 'paid', 'maternity', 'paternity', 'emergency', 'vacation')),
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected', 'cancelled')),
		approved_by TEXT,
		approved_at {{ts}},
		notes TEXT,
		is_half_day {{bool}} NOT NULL DEFAULT {{false}},
		category TEXT,
		brief_description TEXT,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_tasks (
		id {{uuid}} PRIMARY KEY,
		user_id TEXT NOT NULL,
		created_by TEXT NOT NULL,
		task_name TEXT NOT NULL CHECK (length(task_name) > 0),
		description TEXT,
		task_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed', 'skipped')),
		priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
		tags {{json}} NOT NULL DEFAULT '[]',
		attachments {{json}} NOT NULL DEFAULT '[]',
		completed_at {{ts}},
		is_active {{bool}} NOT NULL DEFAULT {{true}},
		project_id TEXT,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,

	// legacy proxy tables
	`CREATE TABLE IF NOT EXISTS task (
		id {{serial}},
		title TEXT,
		status TEXT,
		due_date TEXT,
		priority TEXT,
		assigned_to TEXT,
		description TEXT,
		assigned_date TEXT,
		project_name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS finance (
		id {{serial}},
		description TEXT,
		amount {{real}},
		type TEXT,
		date TEXT,
		project_name TEXT,
		due_date TEXT,
		contact_person TEXT,
		contact_person_contact_no TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id {{serial}},
		name TEXT,
		email TEXT,
		mobile TEXT,
		address TEXT,
		created_at {{ts}}
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_members_created_at ON members(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_created_at ON leaves(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_tasks_task_date ON daily_tasks(task_date, created_at)`,
}

// Migrate creates every table and index idempotently
func Migrate(ctx context.Context, db *DB) error {
	return runMigrations(ctx, db)
}

func runMigrations(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, db.Dialect.ddl(stmt)); err != nil {
			return fmt.Errorf("migration failed on %q: %w", firstLine(stmt), err)
		}
	}
	slog.Debug("migrations applied", "statements", len(schema), "dialect", db.Dialect.String())
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

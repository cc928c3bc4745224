package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_notes_field_to_shift_reports",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_shift_field_to_returned_task_groups",
		Up:      migrationV2,
	},
}

// RunMigrations applies any pending migrations in order.
func RunMigrations() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := database.Query("SELECT version FROM schema_version")
	if err != nil {
		return fmt.Errorf("failed to read schema_version: %w", err)
	}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return err
		}
		applied[v] = true
	}
	rows.Close()

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// migrationV1 adds the free-text notes column to shift reports.
func migrationV1(database *sql.DB) error {
	if hasColumn(database, "shift_reports", "notes") {
		return nil
	}
	_, err := database.Exec("ALTER TABLE shift_reports ADD COLUMN notes TEXT")
	return err
}

// migrationV2 adds the originating shift to returned pool groups.
func migrationV2(database *sql.DB) error {
	if hasColumn(database, "task_groups", "shift") {
		return nil
	}
	_, err := database.Exec("ALTER TABLE task_groups ADD COLUMN shift TEXT")
	return err
}

func hasColumn(database *sql.DB, table, column string) bool {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false
		}
		if name == column {
			return true
		}
	}
	return false
}

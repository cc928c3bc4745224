// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema and cannot drift from production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/labops/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTester inserts a roster entry and returns its id.
func seedTester(t *testing.T, database *sql.DB, id, name, team string) string {
	t.Helper()
	if id == "" {
		id = "TESTER-001"
	}
	if name == "" {
		name = "Kim"
	}
	if team == "" {
		team = "testers"
	}
	if _, err := database.Exec("INSERT INTO testers (id, name, team) VALUES (?, ?, ?)", id, name, team); err != nil {
		t.Fatalf("failed to seed tester: %v", err)
	}
	return id
}

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: a small
// roster, a realistic mapping table, and a pool group with due dates.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	// Roster
	people := []struct{ id, name, team string }{
		{"TESTER-001", "Kim", "testers"},
		{"TESTER-002", "Priya", "testers"},
		{"TESTER-003", "Jonas", "assistants"},
	}
	for _, p := range people {
		if _, err := database.Exec(
			"INSERT INTO testers (id, name, team, created_at) VALUES (?, ?, ?, ?)",
			p.id, p.name, p.team, now,
		); err != nil {
			return fmt.Errorf("seed testers: %w", err)
		}
	}

	// Mapping table
	maps := []struct {
		id, desc, variant, group, sub string
		order                         int
	}{
		{"MAP-001", "Density", "15C", "Physical", "Density", 1},
		{"MAP-002", "Viscosity", "40C", "Physical", "Viscosity", 2},
		{"MAP-003", "pH", "", "Wet Chemistry", "pH", 10},
		{"MAP-004", "Conductivity", "", "Wet Chemistry", "Conductivity", 11},
	}
	for _, m := range maps {
		if _, err := database.Exec(
			"INSERT INTO test_mappings (id, description, variant, header_group, header_sub, sort_order, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			m.id, m.desc, m.variant, m.group, m.sub, m.order, now,
		); err != nil {
			return fmt.Errorf("seed test_mappings: %w", err)
		}
	}

	// One pool group with two items
	items := `[
		{"Description":"Density","Variant":"15C","Sample Name":"S-100","Request ID":"REQ-1001","Due Date":"2024-05-03","localId":"seed-item-1"},
		{"Description":"Viscosity","Variant":"40C","Sample Name":"S-100","Request ID":"REQ-1001","Due Date":"2024-05-03","localId":"seed-item-2"}
	]`
	if _, err := database.Exec(
		"INSERT INTO task_groups (id, request_id, category, items, created_at) VALUES (?, ?, 'Normal', ?, ?)",
		"GROUP-SEED-001", "REQ-1001", items, now,
	); err != nil {
		return fmt.Errorf("seed task_groups: %w", err)
	}

	return nil
}

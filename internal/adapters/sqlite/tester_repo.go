package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/labops/internal/ports/secondary"
)

// TesterRepository implements secondary.TesterRepository with SQLite.
type TesterRepository struct {
	db *sql.DB
}

// NewTesterRepository creates a new SQLite tester repository.
func NewTesterRepository(db *sql.DB) *TesterRepository {
	return &TesterRepository{db: db}
}

// Create persists a new roster entry.
func (r *TesterRepository) Create(ctx context.Context, tester *secondary.TesterRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO testers (id, name, team) VALUES (?, ?, ?)",
		tester.ID, tester.Name, tester.Team,
	)
	if err != nil {
		return fmt.Errorf("failed to create tester: %w", err)
	}
	return nil
}

// GetByID retrieves a roster entry by its id.
func (r *TesterRepository) GetByID(ctx context.Context, id string) (*secondary.TesterRecord, error) {
	record := &secondary.TesterRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, team FROM testers WHERE id = ?", id,
	).Scan(&record.ID, &record.Name, &record.Team)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tester %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tester: %w", err)
	}
	return record, nil
}

// List retrieves roster entries, optionally filtered by team.
func (r *TesterRepository) List(ctx context.Context, team string) ([]*secondary.TesterRecord, error) {
	query := "SELECT id, name, team FROM testers"
	var args []any
	if team != "" {
		query += " WHERE team = ?"
		args = append(args, team)
	}
	query += " ORDER BY name, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list testers: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TesterRecord
	for rows.Next() {
		record := &secondary.TesterRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Team); err != nil {
			return nil, fmt.Errorf("failed to scan tester: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Update updates a roster entry's name and team.
func (r *TesterRepository) Update(ctx context.Context, tester *secondary.TesterRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE testers SET name = ?, team = ? WHERE id = ?",
		tester.Name, tester.Team, tester.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tester: %w", err)
	}
	return requireRow(result, "tester", tester.ID)
}

// Delete removes a roster entry.
func (r *TesterRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM testers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tester: %w", err)
	}
	return requireRow(result, "tester", id)
}

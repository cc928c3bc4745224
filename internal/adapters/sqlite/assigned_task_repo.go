package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

// AssignedTaskRepository implements secondary.AssignedTaskRepository with SQLite.
type AssignedTaskRepository struct {
	db *sql.DB
}

// NewAssignedTaskRepository creates a new SQLite assigned task repository.
func NewAssignedTaskRepository(db *sql.DB) *AssignedTaskRepository {
	return &AssignedTaskRepository{db: db}
}

const assignedTaskSelectCols = "id, request_id, category, tester_id, date, shift, status, items, created_at"

func scanAssignedTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.AssignedTaskRecord, error) {
	var (
		itemsJSON string
		createdAt time.Time
	)

	record := &secondary.AssignedTaskRecord{}
	err := scanner.Scan(
		&record.ID, &record.RequestID, &record.Category, &record.TesterID,
		&record.Date, &record.Shift, &record.Status, &itemsJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.Items, err = decodeItems(itemsJSON)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Create persists a new execution assignment.
func (r *AssignedTaskRepository) Create(ctx context.Context, task *secondary.AssignedTaskRecord) error {
	itemsJSON, err := encodeItems(task.Items)
	if err != nil {
		return err
	}

	status := task.Status
	if status == "" {
		status = item.StatusPending
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO assigned_tasks (id, request_id, category, tester_id, date, shift, status, items) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		task.ID, task.RequestID, task.Category, task.TesterID, task.Date, task.Shift, status, itemsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create assigned task: %w", err)
	}

	return nil
}

// GetByID retrieves an execution assignment by its id.
func (r *AssignedTaskRepository) GetByID(ctx context.Context, id string) (*secondary.AssignedTaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+assignedTaskSelectCols+" FROM assigned_tasks WHERE id = ?", id,
	)

	record, err := scanAssignedTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assigned task %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned task: %w", err)
	}

	return record, nil
}

// List retrieves execution assignments matching the filters.
func (r *AssignedTaskRepository) List(ctx context.Context, filters secondary.AssignedTaskFilters) ([]*secondary.AssignedTaskRecord, error) {
	query := "SELECT " + assignedTaskSelectCols + " FROM assigned_tasks WHERE 1=1"
	var args []any

	if filters.Date != "" {
		query += " AND date = ?"
		args = append(args, filters.Date)
	}
	if filters.Shift != "" {
		query += " AND shift = ?"
		args = append(args, filters.Shift)
	}
	if filters.TesterID != "" {
		query += " AND tester_id = ?"
		args = append(args, filters.TesterID)
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tasks: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AssignedTaskRecord
	for rows.Next() {
		record, err := scanAssignedTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assigned task: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// UpdateItems replaces an assignment's item list.
func (r *AssignedTaskRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	itemsJSON, err := encodeItems(items)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE assigned_tasks SET items = ? WHERE id = ?", itemsJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update assigned task items: %w", err)
	}
	return requireRow(result, "assigned task", id)
}

// Delete removes an execution assignment.
func (r *AssignedTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM assigned_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete assigned task: %w", err)
	}
	return requireRow(result, "assigned task", id)
}

// DeleteMany removes assignments in sequential store-sized batches.
func (r *AssignedTaskRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteInChunks(ctx, r.db, "assigned_tasks", ids)
}

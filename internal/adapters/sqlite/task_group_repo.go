package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

// TaskGroupRepository implements secondary.TaskGroupRepository with SQLite.
type TaskGroupRepository struct {
	db *sql.DB
}

// NewTaskGroupRepository creates a new SQLite task group repository.
func NewTaskGroupRepository(db *sql.DB) *TaskGroupRepository {
	return &TaskGroupRepository{db: db}
}

const taskGroupSelectCols = "id, request_id, category, sort_order, is_returned_pool, return_reason, returned_by, shift, items, created_at"

// scanTaskGroup scans one row into a TaskGroupRecord.
func scanTaskGroup(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskGroupRecord, error) {
	var (
		sortOrder    sql.NullInt64
		returnReason sql.NullString
		returnedBy   sql.NullString
		shift        sql.NullString
		itemsJSON    string
		createdAt    time.Time
	)

	record := &secondary.TaskGroupRecord{}
	err := scanner.Scan(
		&record.ID, &record.RequestID, &record.Category, &sortOrder,
		&record.IsReturnedPool, &returnReason, &returnedBy, &shift,
		&itemsJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if sortOrder.Valid {
		record.Order = int(sortOrder.Int64)
		record.HasOrder = true
	}
	record.ReturnReason = returnReason.String
	record.ReturnedBy = returnedBy.String
	record.Shift = shift.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	record.Items, err = decodeItems(itemsJSON)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Create persists a new task group.
func (r *TaskGroupRepository) Create(ctx context.Context, group *secondary.TaskGroupRecord) error {
	itemsJSON, err := encodeItems(group.Items)
	if err != nil {
		return err
	}

	var sortOrder sql.NullInt64
	if group.HasOrder {
		sortOrder = sql.NullInt64{Int64: int64(group.Order), Valid: true}
	}
	var returnReason, returnedBy, shift, createdAt sql.NullString
	if group.ReturnReason != "" {
		returnReason = sql.NullString{String: group.ReturnReason, Valid: true}
	}
	if group.ReturnedBy != "" {
		returnedBy = sql.NullString{String: group.ReturnedBy, Valid: true}
	}
	if group.Shift != "" {
		shift = sql.NullString{String: group.Shift, Valid: true}
	}
	if group.CreatedAt != "" {
		createdAt = sql.NullString{String: group.CreatedAt, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO task_groups (id, request_id, category, sort_order, is_returned_pool, return_reason, returned_by, shift, items, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))",
		group.ID, group.RequestID, group.Category, sortOrder, group.IsReturnedPool, returnReason, returnedBy, shift, itemsJSON, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task group: %w", err)
	}

	return nil
}

// GetByID retrieves a task group by its id.
func (r *TaskGroupRepository) GetByID(ctx context.Context, id string) (*secondary.TaskGroupRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskGroupSelectCols+" FROM task_groups WHERE id = ?", id,
	)

	record, err := scanTaskGroup(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task group %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task group: %w", err)
	}

	return record, nil
}

// List retrieves task groups matching the filters, pool order first.
func (r *TaskGroupRepository) List(ctx context.Context, filters secondary.TaskGroupFilters) ([]*secondary.TaskGroupRecord, error) {
	query := "SELECT " + taskGroupSelectCols + " FROM task_groups WHERE 1=1"
	var args []any

	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}
	if filters.ReturnedOnly {
		query += " AND is_returned_pool = 1"
	}
	query += " ORDER BY sort_order IS NULL, sort_order, created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task groups: %w", err)
	}
	defer rows.Close()

	var records []*secondary.TaskGroupRecord
	for rows.Next() {
		record, err := scanTaskGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task group: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// UpdateItems replaces a group's item list.
func (r *TaskGroupRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	itemsJSON, err := encodeItems(items)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE task_groups SET items = ? WHERE id = ?", itemsJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task group items: %w", err)
	}
	return requireRow(result, "task group", id)
}

// SetOrder sets a group's explicit sort position.
func (r *TaskGroupRepository) SetOrder(ctx context.Context, id string, order int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE task_groups SET sort_order = ? WHERE id = ?", order, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set task group order: %w", err)
	}
	return requireRow(result, "task group", id)
}

// SetCategory moves a group to a different triage bucket.
func (r *TaskGroupRepository) SetCategory(ctx context.Context, id string, category string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE task_groups SET category = ? WHERE id = ?", category, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set task group category: %w", err)
	}
	return requireRow(result, "task group", id)
}

// Delete removes a task group.
func (r *TaskGroupRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM task_groups WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task group: %w", err)
	}
	return requireRow(result, "task group", id)
}

// DeleteMany removes groups in sequential store-sized batches.
func (r *TaskGroupRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteInChunks(ctx, r.db, "task_groups", ids)
}

// requireRow converts a zero-row update into a not-found error.
func requireRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found", kind, id)
	}
	return nil
}

// deleteInChunks issues one DELETE per id chunk, each awaited before the
// next, to respect the store's batch-size limit.
func deleteInChunks(ctx context.Context, db *sql.DB, table string, ids []string) error {
	for _, chunk := range chunkIDs(ids) {
		placeholders := strings.Repeat("?,", len(chunk))
		placeholders = placeholders[:len(placeholders)-1]

		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}

		if _, err := db.ExecContext(ctx,
			"DELETE FROM "+table+" WHERE id IN ("+placeholders+")", args...,
		); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

// PrepareTaskRepository implements secondary.PrepareTaskRepository with SQLite.
type PrepareTaskRepository struct {
	db *sql.DB
}

// NewPrepareTaskRepository creates a new SQLite prepare task repository.
func NewPrepareTaskRepository(db *sql.DB) *PrepareTaskRepository {
	return &PrepareTaskRepository{db: db}
}

const prepareTaskSelectCols = "id, request_id, category, assistant_id, date, shift, original_doc_id, original_indices, items, created_at"

func scanPrepareTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PrepareTaskRecord, error) {
	var (
		originalDocID sql.NullString
		indicesJSON   string
		itemsJSON     string
		createdAt     time.Time
	)

	record := &secondary.PrepareTaskRecord{}
	err := scanner.Scan(
		&record.ID, &record.RequestID, &record.Category, &record.AssistantID,
		&record.Date, &record.Shift, &originalDocID, &indicesJSON,
		&itemsJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.OriginalDocID = originalDocID.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	record.OriginalIndices, err = decodeInts(indicesJSON)
	if err != nil {
		return nil, err
	}
	record.Items, err = decodeItems(itemsJSON)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Create persists a new preparation assignment.
func (r *PrepareTaskRepository) Create(ctx context.Context, task *secondary.PrepareTaskRecord) error {
	itemsJSON, err := encodeItems(task.Items)
	if err != nil {
		return err
	}
	indicesJSON, err := encodeInts(task.OriginalIndices)
	if err != nil {
		return err
	}

	var originalDocID sql.NullString
	if task.OriginalDocID != "" {
		originalDocID = sql.NullString{String: task.OriginalDocID, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO assigned_prepare_tasks (id, request_id, category, assistant_id, date, shift, original_doc_id, original_indices, items) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		task.ID, task.RequestID, task.Category, task.AssistantID, task.Date, task.Shift, originalDocID, indicesJSON, itemsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create prepare task: %w", err)
	}

	return nil
}

// GetByID retrieves a preparation assignment by its id.
func (r *PrepareTaskRepository) GetByID(ctx context.Context, id string) (*secondary.PrepareTaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+prepareTaskSelectCols+" FROM assigned_prepare_tasks WHERE id = ?", id,
	)

	record, err := scanPrepareTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prepare task %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prepare task: %w", err)
	}

	return record, nil
}

// List retrieves preparation assignments matching the filters.
func (r *PrepareTaskRepository) List(ctx context.Context, filters secondary.PrepareTaskFilters) ([]*secondary.PrepareTaskRecord, error) {
	query := "SELECT " + prepareTaskSelectCols + " FROM assigned_prepare_tasks WHERE 1=1"
	var args []any

	if filters.Date != "" {
		query += " AND date = ?"
		args = append(args, filters.Date)
	}
	if filters.Shift != "" {
		query += " AND shift = ?"
		args = append(args, filters.Shift)
	}
	if filters.AssistantID != "" {
		query += " AND assistant_id = ?"
		args = append(args, filters.AssistantID)
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list prepare tasks: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PrepareTaskRecord
	for rows.Next() {
		record, err := scanPrepareTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prepare task: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// UpdateItems replaces a preparation assignment's item list.
func (r *PrepareTaskRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	itemsJSON, err := encodeItems(items)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE assigned_prepare_tasks SET items = ? WHERE id = ?", itemsJSON, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update prepare task items: %w", err)
	}
	return requireRow(result, "prepare task", id)
}

// Delete removes a preparation assignment.
func (r *PrepareTaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM assigned_prepare_tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete prepare task: %w", err)
	}
	return requireRow(result, "prepare task", id)
}

// DeleteMany removes preparation assignments in sequential batches.
func (r *PrepareTaskRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteInChunks(ctx, r.db, "assigned_prepare_tasks", ids)
}

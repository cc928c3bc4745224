package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/labops/internal/ports/secondary"
)

// MappingRepository implements secondary.MappingRepository with SQLite.
type MappingRepository struct {
	db *sql.DB
}

// NewMappingRepository creates a new SQLite mapping repository.
func NewMappingRepository(db *sql.DB) *MappingRepository {
	return &MappingRepository{db: db}
}

const mappingSelectCols = "id, description, variant, header_group, header_sub, sort_order"

func scanMapping(scanner interface {
	Scan(dest ...any) error
}) (*secondary.MappingRecord, error) {
	var sortOrder sql.NullInt64

	record := &secondary.MappingRecord{}
	err := scanner.Scan(
		&record.ID, &record.Description, &record.Variant,
		&record.HeaderGroup, &record.HeaderSub, &sortOrder,
	)
	if err != nil {
		return nil, err
	}

	if sortOrder.Valid {
		record.Order = int(sortOrder.Int64)
		record.HasOrder = true
	}
	return record, nil
}

// Create persists a new mapping rule.
func (r *MappingRepository) Create(ctx context.Context, mapping *secondary.MappingRecord) error {
	var sortOrder sql.NullInt64
	if mapping.HasOrder {
		sortOrder = sql.NullInt64{Int64: int64(mapping.Order), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO test_mappings (id, description, variant, header_group, header_sub, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
		mapping.ID, mapping.Description, mapping.Variant, mapping.HeaderGroup, mapping.HeaderSub, sortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create mapping: %w", err)
	}
	return nil
}

// GetAll retrieves the whole mapping table in insertion order.
func (r *MappingRepository) GetAll(ctx context.Context) ([]*secondary.MappingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+mappingSelectCols+" FROM test_mappings ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	defer rows.Close()

	var records []*secondary.MappingRecord
	for rows.Next() {
		record, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Update updates a mapping rule.
func (r *MappingRepository) Update(ctx context.Context, mapping *secondary.MappingRecord) error {
	var sortOrder sql.NullInt64
	if mapping.HasOrder {
		sortOrder = sql.NullInt64{Int64: int64(mapping.Order), Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE test_mappings SET description = ?, variant = ?, header_group = ?, header_sub = ?, sort_order = ? WHERE id = ?",
		mapping.Description, mapping.Variant, mapping.HeaderGroup, mapping.HeaderSub, sortOrder, mapping.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mapping: %w", err)
	}
	return requireRow(result, "mapping", mapping.ID)
}

// Delete removes a mapping rule.
func (r *MappingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM test_mappings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return requireRow(result, "mapping", id)
}

// DeleteMany removes mapping rules in sequential store-sized batches.
func (r *MappingRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteInChunks(ctx, r.db, "test_mappings", ids)
}

package primary

import "context"

// MappingService defines the primary port for the test mapping table.
type MappingService interface {
	// AddMapping adds a mapping rule row.
	AddMapping(ctx context.Context, req AddMappingRequest) (*MappingRow, error)

	// ListMappings returns all mapping rows.
	ListMappings(ctx context.Context) ([]*MappingRow, error)

	// RemoveMapping deletes one mapping row.
	RemoveMapping(ctx context.Context, mappingID string) error

	// ClearMappings deletes the whole table in sequential batches.
	ClearMappings(ctx context.Context) (int, error)
}

// AddMappingRequest contains parameters for a new mapping rule.
type AddMappingRequest struct {
	Description string
	Variant     string
	HeaderGroup string
	HeaderSub   string
	Order       int
	HasOrder    bool
}

// MappingRow represents a mapping rule at the port boundary.
type MappingRow struct {
	ID          string
	Description string
	Variant     string
	HeaderGroup string
	HeaderSub   string
	Order       int
	HasOrder    bool
}

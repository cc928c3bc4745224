// Package primary defines the primary ports (driving interfaces) for the
// planner: the service contracts consumed by the CLI surface.
package primary

import (
	"context"

	"github.com/example/labops/internal/core/item"
)

// ImportService defines the primary port for spreadsheet ingestion.
type ImportService interface {
	// ImportRows normalizes raw rows into pool groups and persists them.
	ImportRows(ctx context.Context, req ImportRequest) (*ImportResponse, error)

	// ExportPool renders the current pool back into exportable rows.
	ExportPool(ctx context.Context) ([]item.Item, error)
}

// ImportRequest contains parameters for an import run.
type ImportRequest struct {
	Rows            []item.Item
	ExcludedColumns []string
	SplitRulesPath  string // optional YAML override for the compound-test rule table
}

// ImportResponse summarizes an import run. DroppedRows counts rows that
// failed the validity filter; they are never an error.
type ImportResponse struct {
	GroupsCreated int
	ItemsImported int
	DroppedRows   int
}

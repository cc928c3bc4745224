package primary

import (
	"context"

	"github.com/example/labops/internal/core/grid"
	"github.com/example/labops/internal/core/mapping"
)

// GridService defines the primary port for the board and dashboard views.
type GridService interface {
	// Board aggregates the pool into request-id rows across resolved
	// columns. An empty category means all categories.
	Board(ctx context.Context, category string) (*BoardResponse, error)

	// Dashboard aggregates assignment outcomes by person for one date
	// and shift.
	Dashboard(ctx context.Context, date, shift string) ([]grid.PersonSummary, error)
}

// BoardResponse carries the grid rows plus the ordered column layout.
type BoardResponse struct {
	Columns []mapping.Column
	Rows    []grid.Row
}

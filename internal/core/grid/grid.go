// Package grid re-aggregates task items for presentation: by request id
// across resolved columns for the planning board, and by assigned person
// for the shift dashboard.
package grid

import (
	"sort"
	"time"

	"github.com/example/labops/internal/core/classify"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/core/mapping"
)

// SourceGroup is the aggregator's view of one pool group. DocID is the
// stored record's opaque identifier; together with an item index it is the
// handle callers use to act on individual items later.
type SourceGroup struct {
	DocID     string
	RequestID string
	Category  string
	Items     []item.Item
}

// CellItem is one item placed in a grid cell, addressable by its source
// group and index within that group.
type CellItem struct {
	GroupID string
	Index   int
	Item    item.Item
}

// Row is one board row: everything known about a single request id.
type Row struct {
	RequestID string
	DueDate   time.Time
	HasDue    bool
	Badges    classify.Badges
	Cells     map[string][]CellItem
	Unmapped  []CellItem
}

// Build aggregates pool groups into board rows keyed by request id. Rows
// come back sorted by earliest due date, undated requests last; each row
// carries the minimum due date across its items, the OR of all item
// badges, and its items bucketed by resolved column key.
func Build(groups []SourceGroup, rules []mapping.Rule) []Row {
	var order []string
	byRequest := make(map[string]*Row)

	for _, g := range groups {
		row, ok := byRequest[g.RequestID]
		if !ok {
			row = &Row{RequestID: g.RequestID, Cells: make(map[string][]CellItem)}
			byRequest[g.RequestID] = row
			order = append(order, g.RequestID)
		}

		for i, it := range g.Items {
			cell := CellItem{GroupID: g.DocID, Index: i, Item: it}

			if due, ok := it.DueDate(); ok && (!row.HasDue || due.Before(row.DueDate)) {
				row.DueDate = due
				row.HasDue = true
			}
			row.Badges = row.Badges.Or(classify.Classify(it, g.Category))

			if key := mapping.Resolve(it, rules); key != "" {
				row.Cells[key] = append(row.Cells[key], cell)
			} else {
				row.Unmapped = append(row.Unmapped, cell)
			}
		}
	}

	rows := make([]Row, 0, len(order))
	for _, reqID := range order {
		rows = append(rows, *byRequest[reqID])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.HasDue && b.HasDue:
			return a.DueDate.Before(b.DueDate)
		case a.HasDue:
			return true
		default:
			return false
		}
	})
	return rows
}

// Package importer converts raw spreadsheet rows into validated, grouped
// task items ready for the triage pool.
package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/labops/internal/core/classify"
	"github.com/example/labops/internal/core/item"
)

// Group is an ordered run of items sharing one request id.
type Group struct {
	RequestID string
	Items     []item.Item
}

// garbageValues are cell values treated as empty during validation.
var garbageValues = map[string]struct{}{
	"0":    {},
	"-":    {},
	"n/a":  {},
	"nil":  {},
	"none": {},
	"nan":  {},
	"null": {},
}

// Result carries the outcome of a normalization pass. Invalid rows are
// counted, never raised: the operator reviews the count, a bad row is not
// an error.
type Result struct {
	Groups  []Group
	Dropped int
}

// Normalize converts raw rows into pool-ready groups:
// excluded columns are removed, invalid rows dropped, compound tests
// expanded per the rule table, every surviving item gets a fresh localId,
// and items are grouped by request id in first-seen order.
func Normalize(rows []item.Item, excludedColumns []string, rules []SplitRule) Result {
	var res Result
	order := make([]string, 0, len(rows))
	byRequest := make(map[string][]item.Item)

	for _, row := range rows {
		it := row.Clone()
		for _, col := range excludedColumns {
			it.Delete(col)
		}

		if !Valid(it) {
			res.Dropped++
			continue
		}

		for _, expanded := range Expand(it, rules) {
			expanded.Set(item.FieldLocalID, uuid.NewString())

			reqID := expanded.RequestID()
			if reqID == "" {
				// Ungrouped rows each get a placeholder group of their own.
				reqID = "ungrouped-" + uuid.NewString()
			}
			if _, seen := byRequest[reqID]; !seen {
				order = append(order, reqID)
			}
			byRequest[reqID] = append(byRequest[reqID], expanded)
		}
	}

	for _, reqID := range order {
		res.Groups = append(res.Groups, Group{RequestID: reqID, Items: byRequest[reqID]})
	}
	return res
}

// Valid reports whether a row survives the validity filter. A row is
// rejected when its description and variant are both garbage, or when its
// sample name exactly equals its request id (a known data-entry artifact).
func Valid(it item.Item) bool {
	if garbage(it.Description()) && garbage(it.Variant()) {
		return false
	}
	if sample := it.SampleName(); sample != "" && sample == it.RequestID() {
		return false
	}
	return true
}

func garbage(s string) bool {
	if s == "" {
		return true
	}
	_, bad := garbageValues[strings.ToLower(s)]
	return bad
}

// SuggestCategory picks the triage bucket for a freshly imported group
// from the badges of its items. Explicit urgency wins over PoCat; plain
// work lands in Normal.
func SuggestCategory(items []item.Item) string {
	var badges classify.Badges
	for _, it := range items {
		badges = badges.Or(classify.Classify(it, classify.CategoryOther))
	}
	switch {
	case badges.Urgent:
		return classify.CategoryUrgent
	case badges.PoCat:
		return classify.CategoryPoCat
	default:
		return classify.CategoryNormal
	}
}

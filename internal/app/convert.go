// Package app implements the primary ports: the services that drive the
// lifecycle, import, grid, schedule, roster, mapping, and report
// operations against the store's repositories.
package app

import (
	"github.com/example/labops/internal/core/grid"
	"github.com/example/labops/internal/core/mapping"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// mappingRules converts stored mapping records to resolver rules,
// preserving table order.
func mappingRules(records []*secondary.MappingRecord) []mapping.Rule {
	rules := make([]mapping.Rule, 0, len(records))
	for _, m := range records {
		rules = append(rules, mapping.Rule{
			Description: m.Description,
			Variant:     m.Variant,
			HeaderGroup: m.HeaderGroup,
			HeaderSub:   m.HeaderSub,
			Order:       m.Order,
			HasOrder:    m.HasOrder,
		})
	}
	return rules
}

// sourceGroups converts stored pool groups to the aggregator's view.
func sourceGroups(records []*secondary.TaskGroupRecord) []grid.SourceGroup {
	groups := make([]grid.SourceGroup, 0, len(records))
	for _, g := range records {
		groups = append(groups, grid.SourceGroup{
			DocID:     g.ID,
			RequestID: g.RequestID,
			Category:  g.Category,
			Items:     g.Items,
		})
	}
	return groups
}

func recordToMappingRow(m *secondary.MappingRecord) *primary.MappingRow {
	return &primary.MappingRow{
		ID:          m.ID,
		Description: m.Description,
		Variant:     m.Variant,
		HeaderGroup: m.HeaderGroup,
		HeaderSub:   m.HeaderSub,
		Order:       m.Order,
		HasOrder:    m.HasOrder,
	}
}

func recordToPerson(t *secondary.TesterRecord) *primary.Person {
	return &primary.Person{ID: t.ID, Name: t.Name, Team: t.Team}
}

// Package mapping resolves (description, variant) pairs to grid column
// keys and computes the display order of columns.
package mapping

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/example/labops/internal/core/item"
)

// Rule is one row of the mapping table: an exact (description, variant)
// pair bound to a column under a header group.
type Rule struct {
	Description string
	Variant     string
	HeaderGroup string
	HeaderSub   string
	Order       int
	HasOrder    bool
}

// Key joins a header group and sub-header into a column key.
func Key(group, sub string) string {
	return group + "|" + sub
}

// Resolve returns the column key for the item, or "" when no rule matches.
// Matching is exact after normalization: lower-case, whitespace stripped.
// There is no fuzzy fallback; unmatched items land in the unmapped bucket
// where they still get operator attention.
func Resolve(it item.Item, rules []Rule) string {
	desc := normalize(it.Description())
	variant := normalize(it.Variant())
	for _, r := range rules {
		if normalize(r.Description) == desc && normalize(r.Variant) == variant {
			return Key(r.HeaderGroup, r.HeaderSub)
		}
	}
	return ""
}

// Column is one display column group with its ordered sub-headers.
type Column struct {
	Group string
	Subs  []string
}

// Columns computes the display ordering of the mapping table. Groups sort
// by the minimum Order among their rules; rules without an order sort
// last, stable by group name. Within a group, distinct sub-headers sort by
// their minimum Order, ties broken by first-encounter order.
func Columns(rules []Rule) []Column {
	type groupAcc struct {
		name     string
		minOrder int
		hasOrder bool
		subs     []string
		subMin   map[string]int
		subHas   map[string]bool
		subSeen  map[string]int
	}

	var order []*groupAcc
	byName := make(map[string]*groupAcc)

	for _, r := range rules {
		g, ok := byName[r.HeaderGroup]
		if !ok {
			g = &groupAcc{
				name:    r.HeaderGroup,
				subMin:  make(map[string]int),
				subHas:  make(map[string]bool),
				subSeen: make(map[string]int),
			}
			byName[r.HeaderGroup] = g
			order = append(order, g)
		}
		if r.HasOrder && (!g.hasOrder || r.Order < g.minOrder) {
			g.minOrder = r.Order
			g.hasOrder = true
		}
		if _, ok := g.subSeen[r.HeaderSub]; !ok {
			g.subSeen[r.HeaderSub] = len(g.subs)
			g.subs = append(g.subs, r.HeaderSub)
		}
		if r.HasOrder && (!g.subHas[r.HeaderSub] || r.Order < g.subMin[r.HeaderSub]) {
			g.subMin[r.HeaderSub] = r.Order
			g.subHas[r.HeaderSub] = true
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		switch {
		case a.hasOrder && b.hasOrder:
			if a.minOrder != b.minOrder {
				return a.minOrder < b.minOrder
			}
			return a.name < b.name
		case a.hasOrder:
			return true
		case b.hasOrder:
			return false
		default:
			return a.name < b.name
		}
	})

	out := make([]Column, 0, len(order))
	for _, g := range order {
		subs := append([]string(nil), g.subs...)
		sort.SliceStable(subs, func(i, j int) bool {
			a, b := subs[i], subs[j]
			switch {
			case g.subHas[a] && g.subHas[b]:
				if g.subMin[a] != g.subMin[b] {
					return g.subMin[a] < g.subMin[b]
				}
				return g.subSeen[a] < g.subSeen[b]
			case g.subHas[a]:
				return true
			case g.subHas[b]:
				return false
			default:
				return g.subSeen[a] < g.subSeen[b]
			}
		})
		out = append(out, Column{Group: g.name, Subs: subs})
	}
	return out
}

// normalize lower-cases, NFC-composes, and strips whitespace. Spreadsheet
// headers arrive with mixed composition forms depending on the editor
// that produced them.
func normalize(s string) string {
	s = norm.NFC.String(s)
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r', ' ':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

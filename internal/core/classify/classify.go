// Package classify derives display badges for task items. The import view,
// the assignment view, and the shift dashboard all show the same badges, so
// this is the single place the keyword rules live.
package classify

import (
	"strings"

	"github.com/example/labops/internal/core/item"
)

// Category buckets assigned at triage time.
const (
	CategoryUrgent = "Urgent"
	CategoryNormal = "Normal"
	CategoryPoCat  = "PoCat"
	CategoryManual = "Manual"
	CategoryOther  = "Other"
)

// Badges are the derived boolean classifications for one item.
type Badges struct {
	Sprint bool
	Urgent bool
	LSP    bool
	PoCat  bool
	Manual bool
}

// Or combines two badge sets field-wise.
func (b Badges) Or(other Badges) Badges {
	return Badges{
		Sprint: b.Sprint || other.Sprint,
		Urgent: b.Urgent || other.Urgent,
		LSP:    b.LSP || other.LSP,
		PoCat:  b.PoCat || other.PoCat,
		Manual: b.Manual || other.Manual,
	}
}

// badgeFields are the free-text fields scanned for keywords.
var badgeFields = []string{
	item.FieldPurpose,
	item.FieldPriority,
	"Remark",
	"Note to Planner",
	"Additional Information",
	item.FieldDescription,
}

// Classify computes the badges for one item given its group's category.
// Keywords are matched against the concatenated free-text fields twice:
// once as written and once with all whitespace stripped, so "po cat" and
// "pocat" both register.
func Classify(it item.Item, category string) Badges {
	var sb strings.Builder
	for _, f := range badgeFields {
		sb.WriteString(strings.ToLower(it.Field(f)))
		sb.WriteByte(' ')
	}
	text := sb.String()
	squashed := stripWhitespace(text)

	has := func(keyword string) bool {
		return strings.Contains(text, keyword) || strings.Contains(squashed, keyword)
	}

	return Badges{
		Sprint: has("sprint"),
		Urgent: has("urgent") || category == CategoryUrgent,
		LSP:    has("lsp"),
		PoCat:  has("pocat") || category == CategoryPoCat,
		Manual: category == CategoryManual || it.IsManual(),
	}
}

func stripWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

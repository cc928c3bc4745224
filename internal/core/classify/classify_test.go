package classify

import (
	"testing"

	"github.com/example/labops/internal/core/item"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		it       item.Item
		category string
		want     Badges
	}{
		{
			name:     "plain item has no badges",
			it:       item.Item{"Description": "Density", "Purpose": "release"},
			category: CategoryNormal,
			want:     Badges{},
		},
		{
			name:     "urgent keyword in priority",
			it:       item.Item{"Priority": "URGENT - customer waiting"},
			category: CategoryNormal,
			want:     Badges{Urgent: true},
		},
		{
			name:     "urgent category without keyword",
			it:       item.Item{"Description": "Density"},
			category: CategoryUrgent,
			want:     Badges{Urgent: true},
		},
		{
			name:     "pocat spelled with a space",
			it:       item.Item{"Remark": "po cat sample"},
			category: CategoryNormal,
			want:     Badges{PoCat: true},
		},
		{
			name:     "pocat spelled solid",
			it:       item.Item{"Remark": "POCAT retest"},
			category: CategoryNormal,
			want:     Badges{PoCat: true},
		},
		{
			name:     "sprint in note to planner",
			it:       item.Item{"Note to Planner": "part of sprint batch"},
			category: CategoryNormal,
			want:     Badges{Sprint: true},
		},
		{
			name:     "lsp in additional information",
			it:       item.Item{"Additional Information": "LSP verification"},
			category: CategoryNormal,
			want:     Badges{LSP: true},
		},
		{
			name:     "manual category",
			it:       item.Item{"Description": "ad-hoc check"},
			category: CategoryManual,
			want:     Badges{Manual: true},
		},
		{
			name:     "explicit manual flag",
			it:       item.Item{"Description": "ad-hoc check", item.FieldIsManualEntry: true},
			category: CategoryNormal,
			want:     Badges{Manual: true},
		},
		{
			name:     "multiple badges stack",
			it:       item.Item{"Purpose": "urgent sprint run"},
			category: CategoryPoCat,
			want:     Badges{Sprint: true, Urgent: true, PoCat: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.it, tt.category); got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	it := item.Item{"Purpose": "urgent"}
	first := Classify(it, CategoryNormal)
	second := Classify(it, CategoryNormal)
	if first != second {
		t.Errorf("repeated classification diverged: %+v vs %+v", first, second)
	}
}

func TestBadgesOr(t *testing.T) {
	a := Badges{Sprint: true}
	b := Badges{Urgent: true, Sprint: false}
	got := a.Or(b)
	if !got.Sprint || !got.Urgent || got.LSP {
		t.Errorf("Or() = %+v", got)
	}
}

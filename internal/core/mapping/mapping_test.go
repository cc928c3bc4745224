package mapping

import (
	"reflect"
	"testing"

	"github.com/example/labops/internal/core/item"
)

func TestResolve(t *testing.T) {
	rules := []Rule{
		{Description: "Density", Variant: "15C", HeaderGroup: "Physical", HeaderSub: "Density"},
		{Description: "Viscosity", Variant: "40C", HeaderGroup: "Physical", HeaderSub: "Viscosity"},
		{Description: "Conductivité", Variant: "25C", HeaderGroup: "Wet Chemistry", HeaderSub: "Conductivity"},
	}

	tests := []struct {
		name string
		it   item.Item
		want string
	}{
		{
			name: "exact match",
			it:   item.Item{"Description": "Density", "Variant": "15C"},
			want: "Physical|Density",
		},
		{
			name: "case and whitespace insensitive",
			it:   item.Item{"Description": " density ", "Variant": "15 C"},
			want: "Physical|Density",
		},
		{
			// Decomposed e + combining acute matches the composed form.
			name: "composition forms are equivalent",
			it:   item.Item{"Description": "Conductivité", "Variant": "25C"},
			want: "Wet Chemistry|Conductivity",
		},
		{
			name: "variant mismatch is unmapped",
			it:   item.Item{"Description": "Density", "Variant": "20C"},
			want: "",
		},
		{
			name: "unknown description is unmapped",
			it:   item.Item{"Description": "Flash Point", "Variant": "15C"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.it, rules); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			// Resolution is deterministic.
			if again := Resolve(tt.it, rules); again != Resolve(tt.it, rules) {
				t.Error("Resolve() is not deterministic")
			}
		})
	}
}

func TestColumnsGroupOrdering(t *testing.T) {
	rules := []Rule{
		{HeaderGroup: "A", HeaderSub: "a1", Order: 5, HasOrder: true},
		{HeaderGroup: "B", HeaderSub: "b1", Order: 1, HasOrder: true},
		{HeaderGroup: "A", HeaderSub: "a2", Order: 2, HasOrder: true},
	}

	cols := Columns(rules)
	got := []string{cols[0].Group, cols[1].Group}
	if !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("group order = %v, want [B A]", got)
	}
	// Within A, a2 (order 2) precedes a1 (order 5).
	if !reflect.DeepEqual(cols[1].Subs, []string{"a2", "a1"}) {
		t.Errorf("A subs = %v, want [a2 a1]", cols[1].Subs)
	}
}

func TestColumnsMissingOrderSortsLast(t *testing.T) {
	rules := []Rule{
		{HeaderGroup: "Unordered", HeaderSub: "x"},
		{HeaderGroup: "Ordered", HeaderSub: "y", Order: 10, HasOrder: true},
		{HeaderGroup: "AlsoUnordered", HeaderSub: "z"},
	}

	cols := Columns(rules)
	if cols[0].Group != "Ordered" {
		t.Errorf("first group = %q, want Ordered", cols[0].Group)
	}
	// Unordered groups follow, stable by name.
	if cols[1].Group != "AlsoUnordered" || cols[2].Group != "Unordered" {
		t.Errorf("unordered tail = [%s %s]", cols[1].Group, cols[2].Group)
	}
}

func TestColumnsSubEncounterOrder(t *testing.T) {
	rules := []Rule{
		{HeaderGroup: "G", HeaderSub: "first"},
		{HeaderGroup: "G", HeaderSub: "second"},
		{HeaderGroup: "G", HeaderSub: "first"},
	}

	cols := Columns(rules)
	if !reflect.DeepEqual(cols[0].Subs, []string{"first", "second"}) {
		t.Errorf("subs = %v, want encounter order", cols[0].Subs)
	}
}

package item

import (
	"testing"
	"time"
)

func TestFieldCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		it   Item
		get  string
		want string
	}{
		{
			name: "exact key",
			it:   Item{"Description": "Density"},
			get:  "Description",
			want: "Density",
		},
		{
			name: "lower-cased header",
			it:   Item{"description": "Density"},
			get:  "Description",
			want: "Density",
		},
		{
			name: "padded header and value",
			it:   Item{"  Request ID ": "  REQ-001  "},
			get:  "Request ID",
			want: "REQ-001",
		},
		{
			name: "missing field",
			it:   Item{"Variant": "A"},
			get:  "Description",
			want: "",
		},
		{
			name: "numeric cell",
			it:   Item{"Quantity": float64(3)},
			get:  "Quantity",
			want: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.Field(tt.get); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.get, got, tt.want)
			}
		})
	}
}

func TestSetReplacesVariantSpellings(t *testing.T) {
	it := Item{"description": "old", " Description ": "older"}
	it.Set(FieldDescription, "new")

	if got := it.Field(FieldDescription); got != "new" {
		t.Errorf("Field after Set = %q, want %q", got, "new")
	}
	if len(it) != 1 {
		t.Errorf("expected duplicate spellings collapsed, have %d keys", len(it))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Item{"Description": "Density", FieldLocalID: "abc"}
	clone := orig.Clone()
	clone.Set(FieldLocalID, "xyz")

	if orig.LocalID() != "abc" {
		t.Errorf("mutating clone changed original localId to %q", orig.LocalID())
	}
	if clone.LocalID() != "xyz" {
		t.Errorf("clone localId = %q, want xyz", clone.LocalID())
	}
}

func TestDueDateSerial(t *testing.T) {
	// 45413 days past 1899-12-30 is 2024-05-01.
	it := Item{"Due Date": float64(45413)}

	got, ok := it.DueDate()
	if !ok {
		t.Fatal("expected a due date")
	}
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got, want)
	}
}

func TestDueDateStringForms(t *testing.T) {
	tests := []struct {
		name   string
		cell   any
		wantOK bool
	}{
		{"iso date", "2024-05-01", true},
		{"serial as string", "45413", true},
		{"empty", "", false},
		{"garbage", "whenever", false},
		{"absent", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{}
			if tt.cell != nil {
				it["Due Date"] = tt.cell
			}
			if _, ok := it.DueDate(); ok != tt.wantOK {
				t.Errorf("DueDate ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestDateSerialRoundTrip(t *testing.T) {
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := FromDateSerial(ToDateSerial(want)); !got.Equal(want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

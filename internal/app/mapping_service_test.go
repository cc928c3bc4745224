package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/example/labops/internal/ports/primary"
)

func TestAddMapping(t *testing.T) {
	mappings := newMockMappingRepository()
	svc := NewMappingService(mappings)

	row, err := svc.AddMapping(context.Background(), primary.AddMappingRequest{
		Description: "Density", Variant: "15C", HeaderGroup: "Physical", HeaderSub: "Density 15C", Order: 1, HasOrder: true,
	})
	if err != nil {
		t.Fatalf("AddMapping failed: %v", err)
	}
	if row.ID == "" {
		t.Error("expected a generated id")
	}
	if len(mappings.mappings) != 1 {
		t.Errorf("expected 1 persisted mapping, got %d", len(mappings.mappings))
	}
}

func TestAddMappingValidation(t *testing.T) {
	svc := NewMappingService(newMockMappingRepository())
	ctx := context.Background()

	if _, err := svc.AddMapping(ctx, primary.AddMappingRequest{HeaderGroup: "Physical"}); err == nil {
		t.Error("expected error for missing description")
	}
	if _, err := svc.AddMapping(ctx, primary.AddMappingRequest{Description: "Density"}); err == nil {
		t.Error("expected error for missing header group")
	}
}

func TestListMappingsKeepsTableOrder(t *testing.T) {
	mappings := newMockMappingRepository()
	svc := NewMappingService(mappings)
	ctx := context.Background()

	for _, desc := range []string{"Viscosity", "Density", "pH"} {
		if _, err := svc.AddMapping(ctx, primary.AddMappingRequest{Description: desc, HeaderGroup: "G"}); err != nil {
			t.Fatalf("AddMapping failed: %v", err)
		}
	}

	rows, err := svc.ListMappings(ctx)
	if err != nil {
		t.Fatalf("ListMappings failed: %v", err)
	}
	got := []string{rows[0].Description, rows[1].Description, rows[2].Description}
	want := []string{"Viscosity", "Density", "pH"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}
}

func TestClearMappings(t *testing.T) {
	mappings := newMockMappingRepository()
	svc := NewMappingService(mappings)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		svc.AddMapping(ctx, primary.AddMappingRequest{Description: fmt.Sprintf("D%d", i), HeaderGroup: "G"})
	}

	n, err := svc.ClearMappings(ctx)
	if err != nil {
		t.Fatalf("ClearMappings failed: %v", err)
	}
	if n != 12 {
		t.Errorf("expected 12 cleared, got %d", n)
	}
	if len(mappings.mappings) != 0 {
		t.Errorf("expected empty table, got %d rows", len(mappings.mappings))
	}
}

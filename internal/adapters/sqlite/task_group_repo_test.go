package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/example/labops/internal/adapters/sqlite"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

func TestTaskGroupCreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	group := &secondary.TaskGroupRecord{
		ID:        "GROUP-001",
		RequestID: "REQ-1",
		Category:  "Normal",
		Items: []item.Item{
			{"Description": "Density", "Variant": "15C", "localId": "id-1"},
		},
	}
	if err := repo.Create(ctx, group); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "GROUP-001")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.RequestID != "REQ-1" || got.Category != "Normal" {
		t.Errorf("got %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].LocalID() != "id-1" {
		t.Errorf("items round trip = %+v", got.Items)
	}
	if got.HasOrder {
		t.Error("order should be unset")
	}
}

func TestTaskGroupReturnedPoolFields(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	group := &secondary.TaskGroupRecord{
		ID:             "GROUP-RET",
		RequestID:      "REQ-9",
		Category:       "Other",
		IsReturnedPool: true,
		ReturnReason:   "broken sample",
		ReturnedBy:     "TESTER-001",
		Shift:          "day",
		CreatedAt:      "2026-03-02T09:30:00Z",
		Items:          []item.Item{{"Description": "Density", "isReturned": true}},
	}
	if err := repo.Create(ctx, group); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "GROUP-RET")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsReturnedPool || got.ReturnReason != "broken sample" || got.ReturnedBy != "TESTER-001" || got.Shift != "day" {
		t.Errorf("returned-pool metadata = %+v", got)
	}
	if got.CreatedAt != "2026-03-02T09:30:00Z" {
		t.Errorf("creation timestamp did not round trip: %q", got.CreatedAt)
	}
}

func TestTaskGroupListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	groups := []*secondary.TaskGroupRecord{
		{ID: "G-1", RequestID: "R-1", Category: "Urgent"},
		{ID: "G-2", RequestID: "R-2", Category: "Normal"},
		{ID: "G-3", RequestID: "R-3", Category: "Normal", IsReturnedPool: true},
	}
	for _, g := range groups {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create %s: %v", g.ID, err)
		}
	}

	normal, err := repo.List(ctx, secondary.TaskGroupFilters{Category: "Normal"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(normal) != 2 {
		t.Errorf("normal groups = %d, want 2", len(normal))
	}

	returned, err := repo.List(ctx, secondary.TaskGroupFilters{ReturnedOnly: true})
	if err != nil {
		t.Fatalf("List returned: %v", err)
	}
	if len(returned) != 1 || returned[0].ID != "G-3" {
		t.Errorf("returned groups = %+v", returned)
	}
}

func TestTaskGroupListRespectsExplicitOrder(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	for _, id := range []string{"G-1", "G-2", "G-3"} {
		if err := repo.Create(ctx, &secondary.TaskGroupRecord{ID: id, RequestID: id, Category: "Normal"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.SetOrder(ctx, "G-3", 1); err != nil {
		t.Fatalf("SetOrder: %v", err)
	}
	if err := repo.SetOrder(ctx, "G-1", 2); err != nil {
		t.Fatalf("SetOrder: %v", err)
	}

	got, err := repo.List(ctx, secondary.TaskGroupFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// Explicitly ordered groups first, unordered last.
	if got[0].ID != "G-3" || got[1].ID != "G-1" || got[2].ID != "G-2" {
		t.Errorf("order = %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestTaskGroupUpdateItems(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	if err := repo.Create(ctx, &secondary.TaskGroupRecord{
		ID: "G-1", RequestID: "R-1", Category: "Normal",
		Items: []item.Item{{"localId": "a"}, {"localId": "b"}},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateItems(ctx, "G-1", []item.Item{{"localId": "b"}}); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}

	got, err := repo.GetByID(ctx, "G-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].LocalID() != "b" {
		t.Errorf("items after update = %+v", got.Items)
	}

	if err := repo.UpdateItems(ctx, "G-missing", nil); err == nil {
		t.Error("expected not-found error")
	}
}

func TestTaskGroupDeleteManyExceedingChunkSize(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewTaskGroupRepository(database)
	ctx := context.Background()

	n := secondary.BatchChunkSize + 50
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("G-%04d", i)
		if err := repo.Create(ctx, &secondary.TaskGroupRecord{ID: id, RequestID: id, Category: "Normal"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, id)
	}

	if err := repo.DeleteMany(ctx, ids); err != nil {
		t.Fatalf("DeleteMany: %v", err)
	}

	var remaining int
	if err := database.QueryRow("SELECT COUNT(*) FROM task_groups").Scan(&remaining); err != nil {
		t.Fatal(err)
	}
	if remaining != 0 {
		t.Errorf("remaining groups = %d, want 0", remaining)
	}
}

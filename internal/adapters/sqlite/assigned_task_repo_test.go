package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/labops/internal/adapters/sqlite"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

func TestAssignedTaskCreateDefaultsStatus(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewAssignedTaskRepository(database)
	ctx := context.Background()
	seedTester(t, database, "", "", "")

	task := &secondary.AssignedTaskRecord{
		ID: "AT-1", RequestID: "R-1", Category: "Normal",
		TesterID: "TESTER-001", Date: "2024-05-01", Shift: "day",
		Items: []item.Item{{"Description": "Density", "localId": "a"}},
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, "AT-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != item.StatusPending {
		t.Errorf("default status = %q, want Pending", got.Status)
	}
	if got.TesterID != "TESTER-001" || got.Shift != "day" {
		t.Errorf("got %+v", got)
	}
}

func TestAssignedTaskListByDateShiftTester(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewAssignedTaskRepository(database)
	ctx := context.Background()

	tasks := []*secondary.AssignedTaskRecord{
		{ID: "AT-1", RequestID: "R-1", TesterID: "T-1", Date: "2024-05-01", Shift: "day"},
		{ID: "AT-2", RequestID: "R-2", TesterID: "T-1", Date: "2024-05-01", Shift: "night"},
		{ID: "AT-3", RequestID: "R-3", TesterID: "T-2", Date: "2024-05-01", Shift: "day"},
		{ID: "AT-4", RequestID: "R-4", TesterID: "T-1", Date: "2024-05-02", Shift: "day"},
	}
	for _, task := range tasks {
		task.Category = "Normal"
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("Create %s: %v", task.ID, err)
		}
	}

	got, err := repo.List(ctx, secondary.AssignedTaskFilters{Date: "2024-05-01", Shift: "day"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("day-shift tasks = %d, want 2", len(got))
	}

	got, err = repo.List(ctx, secondary.AssignedTaskFilters{TesterID: "T-1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("T-1 tasks = %d, want 3", len(got))
	}
}

func TestAssignedTaskUpdateItemsAndDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewAssignedTaskRepository(database)
	ctx := context.Background()

	task := &secondary.AssignedTaskRecord{
		ID: "AT-1", RequestID: "R-1", Category: "Normal",
		TesterID: "T-1", Date: "2024-05-01", Shift: "day",
		Items: []item.Item{{"localId": "a", "executionStatus": item.StatusPending}},
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated := []item.Item{{"localId": "a", "executionStatus": item.StatusDone}}
	if err := repo.UpdateItems(ctx, "AT-1", updated); err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}

	got, err := repo.GetByID(ctx, "AT-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Items[0].ExecutionStatus() != item.StatusDone {
		t.Errorf("status = %q", got.Items[0].ExecutionStatus())
	}

	if err := repo.Delete(ctx, "AT-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "AT-1"); err == nil {
		t.Error("expected not-found after delete")
	}
}

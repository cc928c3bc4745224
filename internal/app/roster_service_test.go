package app

import (
	"context"
	"testing"

	"github.com/example/labops/internal/ports/primary"
)

func TestAddPerson(t *testing.T) {
	testers := newMockTesterRepository()
	svc := NewRosterService(testers)

	person, err := svc.AddPerson(context.Background(), primary.AddPersonRequest{Name: "Kim", Team: "testers"})
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if person.ID == "" {
		t.Error("expected a generated id")
	}
	if stored, _ := testers.GetByID(context.Background(), person.ID); stored.Name != "Kim" {
		t.Errorf("expected persisted name Kim, got %q", stored.Name)
	}
}

func TestAddPersonValidation(t *testing.T) {
	svc := NewRosterService(newMockTesterRepository())
	ctx := context.Background()

	if _, err := svc.AddPerson(ctx, primary.AddPersonRequest{Name: "  ", Team: "testers"}); err == nil {
		t.Error("expected error for blank name")
	}
	if _, err := svc.AddPerson(ctx, primary.AddPersonRequest{Name: "Kim", Team: "managers"}); err == nil {
		t.Error("expected error for unknown team")
	}
}

func TestListPeopleByTeam(t *testing.T) {
	testers := newMockTesterRepository()
	testers.add("T1", "Kim", "testers")
	testers.add("A1", "Jonas", "assistants")
	svc := NewRosterService(testers)

	people, err := svc.ListPeople(context.Background(), "assistants")
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}
	if len(people) != 1 || people[0].Name != "Jonas" {
		t.Errorf("expected only Jonas, got %+v", people)
	}
}

func TestRenamePerson(t *testing.T) {
	testers := newMockTesterRepository()
	testers.add("T1", "Kim", "testers")
	svc := NewRosterService(testers)
	ctx := context.Background()

	if err := svc.RenamePerson(ctx, "T1", "Kim L."); err != nil {
		t.Fatalf("RenamePerson failed: %v", err)
	}
	if stored, _ := testers.GetByID(ctx, "T1"); stored.Name != "Kim L." {
		t.Errorf("expected renamed person, got %q", stored.Name)
	}

	if err := svc.RenamePerson(ctx, "nope", "X"); err == nil {
		t.Error("expected error for unknown person")
	}
}

func TestRemovePerson(t *testing.T) {
	testers := newMockTesterRepository()
	testers.add("T1", "Kim", "testers")
	svc := NewRosterService(testers)
	ctx := context.Background()

	if err := svc.RemovePerson(ctx, "T1"); err != nil {
		t.Fatalf("RemovePerson failed: %v", err)
	}
	if _, err := testers.GetByID(ctx, "T1"); err == nil {
		t.Error("expected person deleted")
	}
	if err := svc.RemovePerson(ctx, "T1"); err == nil {
		t.Error("expected error for already-deleted person")
	}
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/labops/internal/core/schedule"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	testerRepo secondary.TesterRepository
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(testerRepo secondary.TesterRepository) *RosterServiceImpl {
	return &RosterServiceImpl{testerRepo: testerRepo}
}

// AddPerson registers a tester or assistant.
func (s *RosterServiceImpl) AddPerson(ctx context.Context, req primary.AddPersonRequest) (*primary.Person, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("a person name is required")
	}
	if req.Team != schedule.TeamTesters && req.Team != schedule.TeamAssistants {
		return nil, fmt.Errorf("unknown team %q", req.Team)
	}

	record := &secondary.TesterRecord{
		ID:   uuid.NewString(),
		Name: name,
		Team: req.Team,
	}
	if err := s.testerRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return recordToPerson(record), nil
}

// ListPeople lists people, optionally filtered by team.
func (s *RosterServiceImpl) ListPeople(ctx context.Context, team string) ([]*primary.Person, error) {
	records, err := s.testerRepo.List(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	people := make([]*primary.Person, 0, len(records))
	for _, r := range records {
		people = append(people, recordToPerson(r))
	}
	return people, nil
}

// RenamePerson updates a person's display name.
func (s *RosterServiceImpl) RenamePerson(ctx context.Context, personID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("a person name is required")
	}

	record, err := s.testerRepo.GetByID(ctx, personID)
	if err != nil {
		return err
	}
	record.Name = name
	if err := s.testerRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}
	return nil
}

// RemovePerson deletes a person from the roster. Existing schedule and
// assignment records keep the id; views fall back to showing it raw.
func (s *RosterServiceImpl) RemovePerson(ctx context.Context, personID string) error {
	if _, err := s.testerRepo.GetByID(ctx, personID); err != nil {
		return err
	}
	if err := s.testerRepo.Delete(ctx, personID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/labops/internal/core/grid"
	"github.com/example/labops/internal/core/mapping"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// GridServiceImpl implements the GridService interface.
type GridServiceImpl struct {
	groupRepo   secondary.TaskGroupRepository
	assignRepo  secondary.AssignedTaskRepository
	prepareRepo secondary.PrepareTaskRepository
	mappingRepo secondary.MappingRepository
	testerRepo  secondary.TesterRepository
}

// NewGridService creates a new GridService with injected dependencies.
func NewGridService(
	groupRepo secondary.TaskGroupRepository,
	assignRepo secondary.AssignedTaskRepository,
	prepareRepo secondary.PrepareTaskRepository,
	mappingRepo secondary.MappingRepository,
	testerRepo secondary.TesterRepository,
) *GridServiceImpl {
	return &GridServiceImpl{
		groupRepo:   groupRepo,
		assignRepo:  assignRepo,
		prepareRepo: prepareRepo,
		mappingRepo: mappingRepo,
		testerRepo:  testerRepo,
	}
}

// Board aggregates the pool into request rows across the resolved column
// layout. A rebuild over an unchanged store yields the same board.
func (s *GridServiceImpl) Board(ctx context.Context, category string) (*primary.BoardResponse, error) {
	groups, err := s.groupRepo.List(ctx, secondary.TaskGroupFilters{Category: category})
	if err != nil {
		return nil, fmt.Errorf("failed to list pool: %w", err)
	}
	mappings, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	rules := mappingRules(mappings)
	return &primary.BoardResponse{
		Columns: mapping.Columns(rules),
		Rows:    grid.Build(sourceGroups(groups), rules),
	}, nil
}

// Dashboard aggregates outcomes by person for one date and shift,
// combining execution assignments (testers), preparation assignments
// (assistants), and pool returns attributed to the reporting tester.
func (s *GridServiceImpl) Dashboard(ctx context.Context, date, shift string) ([]grid.PersonSummary, error) {
	assigned, err := s.assignRepo.List(ctx, secondary.AssignedTaskFilters{Date: date, Shift: shift})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	prepared, err := s.prepareRepo.List(ctx, secondary.PrepareTaskFilters{Date: date, Shift: shift})
	if err != nil {
		return nil, fmt.Errorf("failed to list preparations: %w", err)
	}
	returned, err := s.groupRepo.List(ctx, secondary.TaskGroupFilters{ReturnedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list returned pool: %w", err)
	}

	names, err := s.personNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]grid.AssignedView, 0, len(assigned)+len(prepared))
	for _, task := range assigned {
		views = append(views, grid.AssignedView{
			PersonID:   task.TesterID,
			PersonName: names[task.TesterID],
			Role:       "tester",
			Items:      task.Items,
		})
	}
	for _, task := range prepared {
		views = append(views, grid.AssignedView{
			PersonID:   task.AssistantID,
			PersonName: names[task.AssistantID],
			Role:       "assistant",
			Items:      task.Items,
		})
	}
	// Returned items live in the pool, not in any assignment, so the
	// returned axis has to come from the returned-pool groups of this
	// date and shift.
	for _, g := range returned {
		if g.Shift != shift || !strings.HasPrefix(g.CreatedAt, date) {
			continue
		}
		name := names[g.ReturnedBy]
		if name == "" {
			name = g.ReturnedBy
		}
		views = append(views, grid.AssignedView{
			PersonID:   g.ReturnedBy,
			PersonName: name,
			Role:       "tester",
			Items:      g.Items,
		})
	}

	return grid.ByPerson(views), nil
}

func (s *GridServiceImpl) personNames(ctx context.Context) (map[string]string, error) {
	people, err := s.testerRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	return names, nil
}

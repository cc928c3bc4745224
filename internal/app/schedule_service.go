package app

import (
	"context"
	"fmt"

	"github.com/example/labops/internal/core/schedule"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// ScheduleServiceImpl implements the ScheduleService interface.
type ScheduleServiceImpl struct {
	scheduleRepo secondary.ScheduleRepository
	testerRepo   secondary.TesterRepository
}

// NewScheduleService creates a new ScheduleService with injected
// dependencies.
func NewScheduleService(scheduleRepo secondary.ScheduleRepository, testerRepo secondary.TesterRepository) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo, testerRepo: testerRepo}
}

// Assign puts a person on a shift for a date. The person's team decides
// which list they land in, and they leave the opposite shift of that
// team so the four lists stay disjoint.
func (s *ScheduleServiceImpl) Assign(ctx context.Context, req primary.ScheduleRequest) error {
	person, err := s.testerRepo.GetByID(ctx, req.PersonID)
	if err != nil {
		return err
	}
	if req.Shift != schedule.ShiftDay && req.Shift != schedule.ShiftNight {
		return fmt.Errorf("unknown shift %q", req.Shift)
	}

	sched, err := s.load(ctx, req.Date)
	if err != nil {
		return err
	}
	sched.Assign(person.ID, person.Team, req.Shift)
	return s.store(ctx, sched)
}

// Remove takes a person off the named shift only.
func (s *ScheduleServiceImpl) Remove(ctx context.Context, req primary.ScheduleRequest) error {
	person, err := s.testerRepo.GetByID(ctx, req.PersonID)
	if err != nil {
		return err
	}

	sched, err := s.load(ctx, req.Date)
	if err != nil {
		return err
	}
	sched.Remove(person.ID, person.Team, req.Shift)
	return s.store(ctx, sched)
}

// Get returns the resolved schedule for a date. Ids whose roster entry
// has since been deleted keep their id as the display name.
func (s *ScheduleServiceImpl) Get(ctx context.Context, date string) (*primary.ScheduleView, error) {
	record, err := s.scheduleRepo.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	people, err := s.testerRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}

	resolve := func(ids []string) []primary.PersonRef {
		refs := make([]primary.PersonRef, 0, len(ids))
		for _, id := range ids {
			name, ok := names[id]
			if !ok {
				name = id
			}
			refs = append(refs, primary.PersonRef{ID: id, Name: name})
		}
		return refs
	}

	return &primary.ScheduleView{
		Date:            date,
		DayTesters:      resolve(record.DayTesters),
		NightTesters:    resolve(record.NightTesters),
		DayAssistants:   resolve(record.DayAssistants),
		NightAssistants: resolve(record.NightAssistants),
	}, nil
}

func (s *ScheduleServiceImpl) load(ctx context.Context, date string) (*schedule.Schedule, error) {
	record, err := s.scheduleRepo.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return &schedule.Schedule{
		Date:            date,
		DayTesters:      record.DayTesters,
		NightTesters:    record.NightTesters,
		DayAssistants:   record.DayAssistants,
		NightAssistants: record.NightAssistants,
	}, nil
}

func (s *ScheduleServiceImpl) store(ctx context.Context, sched *schedule.Schedule) error {
	record := &secondary.ScheduleRecord{
		Date:            sched.Date,
		DayTesters:      sched.DayTesters,
		NightTesters:    sched.NightTesters,
		DayAssistants:   sched.DayAssistants,
		NightAssistants: sched.NightAssistants,
	}
	if err := s.scheduleRepo.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

// Interface conformance checks for the shared mocks.
var (
	_ secondary.TaskGroupRepository    = (*mockTaskGroupRepository)(nil)
	_ secondary.AssignedTaskRepository = (*mockAssignedTaskRepository)(nil)
	_ secondary.PrepareTaskRepository  = (*mockPrepareTaskRepository)(nil)
	_ secondary.TesterRepository       = (*mockTesterRepository)(nil)
	_ secondary.MappingRepository      = (*mockMappingRepository)(nil)
	_ secondary.ScheduleRepository     = (*mockScheduleRepository)(nil)
	_ secondary.ShiftReportRepository  = (*mockShiftReportRepository)(nil)
)

// mockTaskGroupRepository implements secondary.TaskGroupRepository for
// testing.
type mockTaskGroupRepository struct {
	groups    map[string]*secondary.TaskGroupRecord
	order     []string
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockTaskGroupRepository() *mockTaskGroupRepository {
	return &mockTaskGroupRepository{groups: make(map[string]*secondary.TaskGroupRecord)}
}

func (m *mockTaskGroupRepository) Create(ctx context.Context, group *secondary.TaskGroupRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.groups[group.ID] = group
	m.order = append(m.order, group.ID)
	return nil
}

func (m *mockTaskGroupRepository) GetByID(ctx context.Context, id string) (*secondary.TaskGroupRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("task group %s not found", id)
}

func (m *mockTaskGroupRepository) List(ctx context.Context, filters secondary.TaskGroupFilters) ([]*secondary.TaskGroupRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.TaskGroupRecord
	for _, id := range m.order {
		g, ok := m.groups[id]
		if !ok {
			continue
		}
		if filters.Category != "" && g.Category != filters.Category {
			continue
		}
		if filters.ReturnedOnly && !g.IsReturnedPool {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (m *mockTaskGroupRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	g, ok := m.groups[id]
	if !ok {
		return fmt.Errorf("task group %s not found", id)
	}
	g.Items = items
	return nil
}

func (m *mockTaskGroupRepository) SetOrder(ctx context.Context, id string, order int) error {
	g, ok := m.groups[id]
	if !ok {
		return fmt.Errorf("task group %s not found", id)
	}
	g.Order = order
	g.HasOrder = true
	return nil
}

func (m *mockTaskGroupRepository) SetCategory(ctx context.Context, id string, category string) error {
	g, ok := m.groups[id]
	if !ok {
		return fmt.Errorf("task group %s not found", id)
	}
	g.Category = category
	return nil
}

func (m *mockTaskGroupRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.groups[id]; !ok {
		return fmt.Errorf("task group %s not found", id)
	}
	delete(m.groups, id)
	return nil
}

func (m *mockTaskGroupRepository) DeleteMany(ctx context.Context, ids []string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for _, id := range ids {
		delete(m.groups, id)
	}
	return nil
}

// mockAssignedTaskRepository implements secondary.AssignedTaskRepository
// for testing.
type mockAssignedTaskRepository struct {
	tasks     map[string]*secondary.AssignedTaskRecord
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockAssignedTaskRepository() *mockAssignedTaskRepository {
	return &mockAssignedTaskRepository{tasks: make(map[string]*secondary.AssignedTaskRecord)}
}

func (m *mockAssignedTaskRepository) Create(ctx context.Context, task *secondary.AssignedTaskRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockAssignedTaskRepository) GetByID(ctx context.Context, id string) (*secondary.AssignedTaskRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if task, ok := m.tasks[id]; ok {
		return task, nil
	}
	return nil, fmt.Errorf("assigned task %s not found", id)
}

func (m *mockAssignedTaskRepository) List(ctx context.Context, filters secondary.AssignedTaskFilters) ([]*secondary.AssignedTaskRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.AssignedTaskRecord
	for _, task := range m.tasks {
		if filters.Date != "" && task.Date != filters.Date {
			continue
		}
		if filters.Shift != "" && task.Shift != filters.Shift {
			continue
		}
		if filters.TesterID != "" && task.TesterID != filters.TesterID {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockAssignedTaskRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("assigned task %s not found", id)
	}
	task.Items = items
	return nil
}

func (m *mockAssignedTaskRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockAssignedTaskRepository) DeleteMany(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.tasks, id)
	}
	return nil
}

// mockPrepareTaskRepository implements secondary.PrepareTaskRepository
// for testing.
type mockPrepareTaskRepository struct {
	tasks     map[string]*secondary.PrepareTaskRecord
	createErr error
	getErr    error
	listErr   error
	updateErr error
}

func newMockPrepareTaskRepository() *mockPrepareTaskRepository {
	return &mockPrepareTaskRepository{tasks: make(map[string]*secondary.PrepareTaskRecord)}
}

func (m *mockPrepareTaskRepository) Create(ctx context.Context, task *secondary.PrepareTaskRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockPrepareTaskRepository) GetByID(ctx context.Context, id string) (*secondary.PrepareTaskRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if task, ok := m.tasks[id]; ok {
		return task, nil
	}
	return nil, fmt.Errorf("prepare task %s not found", id)
}

func (m *mockPrepareTaskRepository) List(ctx context.Context, filters secondary.PrepareTaskFilters) ([]*secondary.PrepareTaskRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.PrepareTaskRecord
	for _, task := range m.tasks {
		if filters.Date != "" && task.Date != filters.Date {
			continue
		}
		if filters.Shift != "" && task.Shift != filters.Shift {
			continue
		}
		if filters.AssistantID != "" && task.AssistantID != filters.AssistantID {
			continue
		}
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockPrepareTaskRepository) UpdateItems(ctx context.Context, id string, items []item.Item) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("prepare task %s not found", id)
	}
	task.Items = items
	return nil
}

func (m *mockPrepareTaskRepository) Delete(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *mockPrepareTaskRepository) DeleteMany(ctx context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.tasks, id)
	}
	return nil
}

// mockTesterRepository implements secondary.TesterRepository for testing.
type mockTesterRepository struct {
	people    map[string]*secondary.TesterRecord
	order     []string
	createErr error
	listErr   error
}

func newMockTesterRepository() *mockTesterRepository {
	return &mockTesterRepository{people: make(map[string]*secondary.TesterRecord)}
}

func (m *mockTesterRepository) add(id, name, team string) {
	m.people[id] = &secondary.TesterRecord{ID: id, Name: name, Team: team}
	m.order = append(m.order, id)
}

func (m *mockTesterRepository) Create(ctx context.Context, tester *secondary.TesterRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.people[tester.ID] = tester
	m.order = append(m.order, tester.ID)
	return nil
}

func (m *mockTesterRepository) GetByID(ctx context.Context, id string) (*secondary.TesterRecord, error) {
	if p, ok := m.people[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("tester %s not found", id)
}

func (m *mockTesterRepository) List(ctx context.Context, team string) ([]*secondary.TesterRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.TesterRecord
	for _, id := range m.order {
		p, ok := m.people[id]
		if !ok {
			continue
		}
		if team != "" && p.Team != team {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockTesterRepository) Update(ctx context.Context, tester *secondary.TesterRecord) error {
	if _, ok := m.people[tester.ID]; !ok {
		return fmt.Errorf("tester %s not found", tester.ID)
	}
	m.people[tester.ID] = tester
	return nil
}

func (m *mockTesterRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.people[id]; !ok {
		return fmt.Errorf("tester %s not found", id)
	}
	delete(m.people, id)
	return nil
}

// mockMappingRepository implements secondary.MappingRepository for
// testing.
type mockMappingRepository struct {
	mappings  []*secondary.MappingRecord
	createErr error
	getErr    error
}

func newMockMappingRepository() *mockMappingRepository {
	return &mockMappingRepository{}
}

func (m *mockMappingRepository) Create(ctx context.Context, mapping *secondary.MappingRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mappings = append(m.mappings, mapping)
	return nil
}

func (m *mockMappingRepository) GetAll(ctx context.Context) ([]*secondary.MappingRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.mappings, nil
}

func (m *mockMappingRepository) Update(ctx context.Context, mapping *secondary.MappingRecord) error {
	for i, existing := range m.mappings {
		if existing.ID == mapping.ID {
			m.mappings[i] = mapping
			return nil
		}
	}
	return fmt.Errorf("mapping %s not found", mapping.ID)
}

func (m *mockMappingRepository) Delete(ctx context.Context, id string) error {
	for i, existing := range m.mappings {
		if existing.ID == id {
			m.mappings = append(m.mappings[:i], m.mappings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("mapping %s not found", id)
}

func (m *mockMappingRepository) DeleteMany(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := m.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// mockScheduleRepository implements secondary.ScheduleRepository for
// testing.
type mockScheduleRepository struct {
	schedules map[string]*secondary.ScheduleRecord
	putErr    error
}

func newMockScheduleRepository() *mockScheduleRepository {
	return &mockScheduleRepository{schedules: make(map[string]*secondary.ScheduleRecord)}
}

func (m *mockScheduleRepository) Get(ctx context.Context, date string) (*secondary.ScheduleRecord, error) {
	if s, ok := m.schedules[date]; ok {
		return s, nil
	}
	return &secondary.ScheduleRecord{Date: date}, nil
}

func (m *mockScheduleRepository) Put(ctx context.Context, schedule *secondary.ScheduleRecord) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.schedules[schedule.Date] = schedule
	return nil
}

func (m *mockScheduleRepository) Delete(ctx context.Context, date string) error {
	delete(m.schedules, date)
	return nil
}

// mockShiftReportRepository implements secondary.ShiftReportRepository
// for testing.
type mockShiftReportRepository struct {
	reports map[string]*secondary.ShiftReportRecord
	putErr  error
}

func newMockShiftReportRepository() *mockShiftReportRepository {
	return &mockShiftReportRepository{reports: make(map[string]*secondary.ShiftReportRecord)}
}

func (m *mockShiftReportRepository) Get(ctx context.Context, date, shift string) (*secondary.ShiftReportRecord, error) {
	return m.reports[date+"_"+shift], nil
}

func (m *mockShiftReportRepository) Put(ctx context.Context, report *secondary.ShiftReportRecord) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.reports[report.Date+"_"+report.Shift] = report
	return nil
}

// errNotFound is reused by tests that inject lookup failures.
var errNotFound = errors.New("not found")

package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/example/labops/internal/core/classify"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/core/lifecycle"
	"github.com/example/labops/internal/core/schedule"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// LifecycleServiceImpl implements the LifecycleService interface. Every
// transition that moves an item between containers creates the receiving
// record before shrinking the donor, so a crash mid-transition leaves a
// duplicate to clean up rather than a lost item.
type LifecycleServiceImpl struct {
	groupRepo   secondary.TaskGroupRepository
	assignRepo  secondary.AssignedTaskRepository
	prepareRepo secondary.PrepareTaskRepository
	testerRepo  secondary.TesterRepository
}

// NewLifecycleService creates a new LifecycleService with injected
// dependencies.
func NewLifecycleService(
	groupRepo secondary.TaskGroupRepository,
	assignRepo secondary.AssignedTaskRepository,
	prepareRepo secondary.PrepareTaskRepository,
	testerRepo secondary.TesterRepository,
) *LifecycleServiceImpl {
	return &LifecycleServiceImpl{
		groupRepo:   groupRepo,
		assignRepo:  assignRepo,
		prepareRepo: prepareRepo,
		testerRepo:  testerRepo,
	}
}

// AddManualGroup creates an ad-hoc pool group. Manual items behave like
// reusable templates later in the lifecycle, so each gets the manual
// flag alongside its localId.
func (s *LifecycleServiceImpl) AddManualGroup(ctx context.Context, req primary.ManualGroupRequest) (*primary.ManualGroupResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("a manual group needs at least one item")
	}

	requestID := req.Label
	if requestID == "" {
		requestID = "manual-" + uuid.NewString()[:8]
	}

	items := make([]item.Item, 0, len(req.Items))
	for _, it := range req.Items {
		clone := it.Clone()
		clone.Set(item.FieldLocalID, uuid.NewString())
		clone.Set(item.FieldIsManualEntry, true)
		items = append(items, clone)
	}

	record := &secondary.TaskGroupRecord{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Category:  classify.CategoryManual,
		Items:     items,
	}
	if err := s.groupRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create manual group: %w", err)
	}

	return &primary.ManualGroupResponse{GroupID: record.ID, RequestID: requestID}, nil
}

// selectionsByGroup validates the selections and groups their indices by
// source group, preserving per-group index order.
func selectionsByGroup(selections []primary.ItemRef) (map[string][]int, []string) {
	byGroup := make(map[string][]int)
	var order []string
	for _, sel := range selections {
		if _, ok := byGroup[sel.GroupID]; !ok {
			order = append(order, sel.GroupID)
		}
		byGroup[sel.GroupID] = append(byGroup[sel.GroupID], sel.Index)
	}
	for _, indices := range byGroup {
		sort.Ints(indices)
	}
	return byGroup, order
}

// AssignForExecution moves the selected pool items into new execution
// assignments, one per source group, then shrinks or deletes the donors.
func (s *LifecycleServiceImpl) AssignForExecution(ctx context.Context, req primary.AssignRequest) (*primary.AssignResponse, error) {
	person, guardErr := s.guardPerson(ctx, req, schedule.TeamTesters)
	if guardErr != nil {
		return nil, guardErr
	}

	byGroup, order := selectionsByGroup(req.Selections)
	resp := &primary.AssignResponse{}

	for _, groupID := range order {
		group, err := s.groupRepo.GetByID(ctx, groupID)
		if err != nil {
			return nil, err
		}

		pulled, remaining, err := splitItems(group.Items, byGroup[groupID])
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", groupID, err)
		}
		for _, it := range pulled {
			it.Set(item.FieldExecutionStatus, item.StatusPending)
		}

		task := &secondary.AssignedTaskRecord{
			ID:        uuid.NewString(),
			RequestID: group.RequestID,
			Category:  group.Category,
			TesterID:  person.ID,
			Date:      req.Date,
			Shift:     req.Shift,
			Status:    item.StatusPending,
			Items:     pulled,
		}
		// Create before delete: a failure here leaves the pool intact.
		if err := s.assignRepo.Create(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}

		if err := s.shrinkGroup(ctx, group, remaining); err != nil {
			return nil, err
		}

		resp.TaskIDs = append(resp.TaskIDs, task.ID)
		resp.ItemCount += len(pulled)
	}

	return resp, nil
}

// AssignForPreparation copies the selected items into a preparation
// assignment for an assistant. Non-manual originals stay in the pool
// marked awaiting preparation; manual originals are left untouched and
// the copies get fresh localIds, since manual pool entries are reusable
// templates.
func (s *LifecycleServiceImpl) AssignForPreparation(ctx context.Context, req primary.AssignRequest) (*primary.AssignResponse, error) {
	person, guardErr := s.guardPerson(ctx, req, schedule.TeamAssistants)
	if guardErr != nil {
		return nil, guardErr
	}

	byGroup, order := selectionsByGroup(req.Selections)
	resp := &primary.AssignResponse{}

	for _, groupID := range order {
		group, err := s.groupRepo.GetByID(ctx, groupID)
		if err != nil {
			return nil, err
		}
		indices := byGroup[groupID]

		copies := make([]item.Item, 0, len(indices))
		for _, idx := range indices {
			if idx < 0 || idx >= len(group.Items) {
				return nil, fmt.Errorf("group %s: item index %d out of range", groupID, idx)
			}
			clone := group.Items[idx].Clone()
			clone.Set(item.FieldPreparationStatus, item.PrepAwaiting)
			copies = append(copies, clone)
		}

		manual := group.Category == classify.CategoryManual
		task := &secondary.PrepareTaskRecord{
			ID:          uuid.NewString(),
			RequestID:   group.RequestID,
			Category:    group.Category,
			AssistantID: person.ID,
			Date:        req.Date,
			Shift:       req.Shift,
			Items:       copies,
		}
		if manual {
			// Clones stand alone: fresh identity, no origin link.
			for _, it := range task.Items {
				it.Set(item.FieldLocalID, uuid.NewString())
			}
		} else {
			task.OriginalDocID = group.ID
			task.OriginalIndices = indices
		}

		if err := s.prepareRepo.Create(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to create preparation: %w", err)
		}

		if !manual {
			// The pool record keeps the item; only its status changes.
			for _, idx := range indices {
				group.Items[idx].Set(item.FieldPreparationStatus, item.PrepAwaiting)
			}
			if err := s.groupRepo.UpdateItems(ctx, group.ID, group.Items); err != nil {
				return nil, fmt.Errorf("failed to mark pool items awaiting preparation: %w", err)
			}
		}

		resp.TaskIDs = append(resp.TaskIDs, task.ID)
		resp.ItemCount += len(copies)
	}

	return resp, nil
}

// MarkPrepared marks a preparation item prepared, then syncs the
// originating pool item to ready-for-testing. A failed back-sync is
// logged and skipped: the preparation record stays authoritative.
func (s *LifecycleServiceImpl) MarkPrepared(ctx context.Context, prepareTaskID, localID string) error {
	task, err := s.prepareRepo.GetByID(ctx, prepareTaskID)
	if err != nil {
		return err
	}

	pos := indexByLocalID(task.Items, localID)
	if pos < 0 {
		return fmt.Errorf("item %s not found in preparation %s", localID, prepareTaskID)
	}
	task.Items[pos].Set(item.FieldPreparationStatus, item.PrepPrepared)
	if err := s.prepareRepo.UpdateItems(ctx, task.ID, task.Items); err != nil {
		return fmt.Errorf("failed to update preparation: %w", err)
	}

	if task.Items[pos].IsManual() || task.OriginalDocID == "" {
		// Manual clones have no original to sync to.
		return nil
	}

	s.syncPreparedToOrigin(ctx, task, pos, localID)
	return nil
}

// syncPreparedToOrigin locates the origin pool item by localId, falling
// back to the stored original index, and marks it ready for testing.
func (s *LifecycleServiceImpl) syncPreparedToOrigin(ctx context.Context, task *secondary.PrepareTaskRecord, pos int, localID string) {
	origin, err := s.groupRepo.GetByID(ctx, task.OriginalDocID)
	if err != nil {
		log.Warn().Err(err).
			Str("group", task.OriginalDocID).
			Str("localId", localID).
			Msg("origin group missing, preparation status not synced")
		return
	}

	idx := indexByLocalID(origin.Items, localID)
	if idx < 0 && pos < len(task.OriginalIndices) {
		if fallback := task.OriginalIndices[pos]; fallback >= 0 && fallback < len(origin.Items) {
			idx = fallback
		}
	}
	if idx < 0 {
		log.Warn().
			Str("group", task.OriginalDocID).
			Str("localId", localID).
			Msg("origin item missing, preparation status not synced")
		return
	}

	origin.Items[idx].Set(item.FieldPreparationStatus, item.PrepReady)
	if err := s.groupRepo.UpdateItems(ctx, origin.ID, origin.Items); err != nil {
		log.Warn().Err(err).
			Str("group", origin.ID).
			Str("localId", localID).
			Msg("failed to write preparation status to origin")
	}
}

// MarkDone marks an execution item done.
func (s *LifecycleServiceImpl) MarkDone(ctx context.Context, assignedTaskID, localID string) error {
	return s.setExecutionStatus(ctx, assignedTaskID, localID, item.StatusDone, "")
}

// ResetToPending reverses a Done or Not OK mark back to Pending.
func (s *LifecycleServiceImpl) ResetToPending(ctx context.Context, assignedTaskID, localID string) error {
	return s.setExecutionStatus(ctx, assignedTaskID, localID, item.StatusPending, "")
}

// MarkNotOK flags an execution item failed. The item stays in its
// assignment with the failure annotation; contrast ReturnItem, which
// removes it.
func (s *LifecycleServiceImpl) MarkNotOK(ctx context.Context, assignedTaskID, localID, reason string) error {
	if guard := lifecycle.CanMarkNotOK(reason); !guard.Allowed {
		return guard.Error()
	}
	return s.setExecutionStatus(ctx, assignedTaskID, localID, item.StatusNotOK, reason)
}

func (s *LifecycleServiceImpl) setExecutionStatus(ctx context.Context, assignedTaskID, localID, status, notOKReason string) error {
	task, err := s.assignRepo.GetByID(ctx, assignedTaskID)
	if err != nil {
		return err
	}

	pos := indexByLocalID(task.Items, localID)
	if pos < 0 {
		return fmt.Errorf("item %s not found in assignment %s", localID, assignedTaskID)
	}

	task.Items[pos].Set(item.FieldExecutionStatus, status)
	if notOKReason != "" {
		task.Items[pos].Set(item.FieldNotOKReason, notOKReason)
	} else {
		task.Items[pos].Delete(item.FieldNotOKReason)
	}

	if err := s.assignRepo.UpdateItems(ctx, task.ID, task.Items); err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// ReturnItem reports an execution item unworkable. The item re-enters
// the pool as a new returned-pool group carrying the failure narrative,
// and leaves its assignment. One-way; see UnassignItem for the planner's
// clean undo.
func (s *LifecycleServiceImpl) ReturnItem(ctx context.Context, req primary.ReturnRequest) error {
	if guard := lifecycle.CanReturn(req.Reason, req.ReportedBy); !guard.Allowed {
		return guard.Error()
	}

	task, err := s.assignRepo.GetByID(ctx, req.AssignedTaskID)
	if err != nil {
		return err
	}
	pos := indexByLocalID(task.Items, req.LocalID)
	if pos < 0 {
		return fmt.Errorf("item %s not found in assignment %s", req.LocalID, req.AssignedTaskID)
	}

	returned := task.Items[pos].Clone()
	returned.Set(item.FieldIsReturned, true)
	returned.Set(item.FieldReturnReason, req.Reason)
	returned.Set(item.FieldReturnedBy, req.ReportedBy)

	pool := &secondary.TaskGroupRecord{
		ID:             uuid.NewString(),
		RequestID:      task.RequestID,
		Category:       task.Category,
		IsReturnedPool: true,
		ReturnReason:   req.Reason,
		ReturnedBy:     req.ReportedBy,
		Shift:          req.Shift,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Items:          []item.Item{returned},
	}
	// Create before delete: a crash here duplicates, never loses.
	if err := s.groupRepo.Create(ctx, pool); err != nil {
		return fmt.Errorf("failed to create returned pool entry: %w", err)
	}

	return s.removeFromAssignment(ctx, task, pos)
}

// UnassignItem is the planner's correction path: the item goes back to
// the ordinary pool as if the assignment never happened, with every
// status field stripped.
func (s *LifecycleServiceImpl) UnassignItem(ctx context.Context, assignedTaskID, localID string) error {
	task, err := s.assignRepo.GetByID(ctx, assignedTaskID)
	if err != nil {
		return err
	}
	pos := indexByLocalID(task.Items, localID)
	if pos < 0 {
		return fmt.Errorf("item %s not found in assignment %s", localID, assignedTaskID)
	}

	clean := task.Items[pos].Clone()
	for _, f := range []string{
		item.FieldExecutionStatus,
		item.FieldNotOKReason,
		item.FieldIsReturned,
		item.FieldReturnReason,
		item.FieldReturnedBy,
		item.FieldPreparationStatus,
	} {
		clean.Delete(f)
	}

	if err := s.addToOrdinaryPool(ctx, task, clean); err != nil {
		return err
	}
	return s.removeFromAssignment(ctx, task, pos)
}

// addToOrdinaryPool appends the item to an existing non-returned pool
// group with the same request id, or creates a fresh group.
func (s *LifecycleServiceImpl) addToOrdinaryPool(ctx context.Context, task *secondary.AssignedTaskRecord, it item.Item) error {
	groups, err := s.groupRepo.List(ctx, secondary.TaskGroupFilters{})
	if err != nil {
		return fmt.Errorf("failed to list pool: %w", err)
	}
	for _, g := range groups {
		if g.RequestID == task.RequestID && !g.IsReturnedPool {
			return s.groupRepo.UpdateItems(ctx, g.ID, append(g.Items, it))
		}
	}

	pool := &secondary.TaskGroupRecord{
		ID:        uuid.NewString(),
		RequestID: task.RequestID,
		Category:  task.Category,
		Items:     []item.Item{it},
	}
	if err := s.groupRepo.Create(ctx, pool); err != nil {
		return fmt.Errorf("failed to create pool group: %w", err)
	}
	return nil
}

// removeFromAssignment drops one item, deleting the assignment when it
// was the last.
func (s *LifecycleServiceImpl) removeFromAssignment(ctx context.Context, task *secondary.AssignedTaskRecord, pos int) error {
	remaining := append(append([]item.Item{}, task.Items[:pos]...), task.Items[pos+1:]...)
	if len(remaining) == 0 {
		if err := s.assignRepo.Delete(ctx, task.ID); err != nil {
			return fmt.Errorf("failed to delete empty assignment: %w", err)
		}
		return nil
	}
	if err := s.assignRepo.UpdateItems(ctx, task.ID, remaining); err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// ReorderGroup sets a pool group's explicit sort position.
func (s *LifecycleServiceImpl) ReorderGroup(ctx context.Context, groupID string, order int) error {
	return s.groupRepo.SetOrder(ctx, groupID, order)
}

// RecategorizeGroup moves a pool group to a different triage bucket.
func (s *LifecycleServiceImpl) RecategorizeGroup(ctx context.Context, groupID, category string) error {
	switch category {
	case classify.CategoryUrgent, classify.CategoryNormal, classify.CategoryPoCat, classify.CategoryManual, classify.CategoryOther:
	default:
		return fmt.Errorf("unknown category: %s", category)
	}
	return s.groupRepo.SetCategory(ctx, groupID, category)
}

// DeleteGroup removes a pool group outright.
func (s *LifecycleServiceImpl) DeleteGroup(ctx context.Context, groupID string) error {
	return s.groupRepo.Delete(ctx, groupID)
}

// PurgePool deletes every pool group matching the category filter, in
// sequential store-sized batches. Returns the number of groups removed.
func (s *LifecycleServiceImpl) PurgePool(ctx context.Context, category string) (int, error) {
	groups, err := s.groupRepo.List(ctx, secondary.TaskGroupFilters{Category: category})
	if err != nil {
		return 0, fmt.Errorf("failed to list pool: %w", err)
	}

	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	if err := s.groupRepo.DeleteMany(ctx, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// guardPerson validates the assignment request and resolves the person,
// requiring membership of the given team.
func (s *LifecycleServiceImpl) guardPerson(ctx context.Context, req primary.AssignRequest, team string) (*secondary.TesterRecord, error) {
	person, err := s.testerRepo.GetByID(ctx, req.PersonID)
	guard := lifecycle.CanAssign(lifecycle.AssignContext{
		PersonID:     req.PersonID,
		PersonExists: err == nil,
		Date:         req.Date,
		Shift:        req.Shift,
		ItemCount:    len(req.Selections),
	})
	if !guard.Allowed {
		return nil, guard.Error()
	}
	if person.Team != team {
		return nil, fmt.Errorf("person %s is not on the %s team", person.ID, team)
	}
	return person, nil
}

// splitItems separates the items at the given sorted indices from the
// rest, preserving order on both sides.
func splitItems(items []item.Item, indices []int) (pulled, remaining []item.Item, err error) {
	selected := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(items) {
			return nil, nil, fmt.Errorf("item index %d out of range", idx)
		}
		selected[idx] = true
	}
	for i, it := range items {
		if selected[i] {
			pulled = append(pulled, it.Clone())
		} else {
			remaining = append(remaining, it)
		}
	}
	return pulled, remaining, nil
}

// shrinkGroup writes back the remaining items, deleting the group when
// none are left.
func (s *LifecycleServiceImpl) shrinkGroup(ctx context.Context, group *secondary.TaskGroupRecord, remaining []item.Item) error {
	if len(remaining) == 0 {
		if err := s.groupRepo.Delete(ctx, group.ID); err != nil {
			return fmt.Errorf("failed to delete empty group: %w", err)
		}
		return nil
	}
	if err := s.groupRepo.UpdateItems(ctx, group.ID, remaining); err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return nil
}

// indexByLocalID finds the item carrying the localId, -1 when absent.
func indexByLocalID(items []item.Item, localID string) int {
	for i, it := range items {
		if it.LocalID() == localID {
			return i
		}
	}
	return -1
}

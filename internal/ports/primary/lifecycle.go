package primary

import (
	"context"

	"github.com/example/labops/internal/core/item"
)

// LifecycleService defines the primary port for task item state
// transitions: pool to assignment, assignment outcomes, and the two
// distinct paths back to the pool.
type LifecycleService interface {
	// AddManualGroup creates an ad-hoc pool group with manual-entry items.
	AddManualGroup(ctx context.Context, req ManualGroupRequest) (*ManualGroupResponse, error)

	// AssignForExecution moves the selected pool items into a new
	// execution assignment for one tester, date, and shift.
	AssignForExecution(ctx context.Context, req AssignRequest) (*AssignResponse, error)

	// AssignForPreparation copies the selected pool items into a new
	// preparation assignment for one assistant, marking the originals
	// as awaiting preparation (manual items are cloned instead).
	AssignForPreparation(ctx context.Context, req AssignRequest) (*AssignResponse, error)

	// MarkPrepared marks a preparation item prepared and syncs the
	// originating pool item to ready-for-testing.
	MarkPrepared(ctx context.Context, prepareTaskID, localID string) error

	// MarkDone marks an execution item done.
	MarkDone(ctx context.Context, assignedTaskID, localID string) error

	// ResetToPending reverses a Done mark back to Pending.
	ResetToPending(ctx context.Context, assignedTaskID, localID string) error

	// MarkNotOK flags an execution item failed with a mandatory reason.
	// The item stays in its assignment, annotated.
	MarkNotOK(ctx context.Context, assignedTaskID, localID, reason string) error

	// ReturnItem reports an execution item unworkable: it leaves the
	// assignment and re-enters the pool as a returned-pool group.
	ReturnItem(ctx context.Context, req ReturnRequest) error

	// UnassignItem is the planner's correction path: the item goes back
	// to the ordinary pool with every status field stripped.
	UnassignItem(ctx context.Context, assignedTaskID, localID string) error

	// ReorderGroup sets a pool group's explicit sort position.
	ReorderGroup(ctx context.Context, groupID string, order int) error

	// RecategorizeGroup moves a pool group to a different triage bucket.
	RecategorizeGroup(ctx context.Context, groupID, category string) error

	// DeleteGroup removes a pool group outright.
	DeleteGroup(ctx context.Context, groupID string) error

	// PurgePool deletes every pool group matching the filter, in
	// sequential store-sized batches.
	PurgePool(ctx context.Context, category string) (int, error)
}

// ItemRef addresses one item inside a stored pool group: the group's
// opaque doc id plus the item's index within it.
type ItemRef struct {
	GroupID string
	Index   int
}

// AssignRequest contains parameters for assigning pool items.
type AssignRequest struct {
	Selections []ItemRef
	PersonID   string
	Date       string
	Shift      string
}

// AssignResponse identifies the created assignment containers, one per
// source pool group the selection touched.
type AssignResponse struct {
	TaskIDs   []string
	ItemCount int
}

// ReturnRequest contains parameters for a tester return.
type ReturnRequest struct {
	AssignedTaskID string
	LocalID        string
	Reason         string
	ReportedBy     string
	Shift          string
}

// ManualGroupRequest contains parameters for an ad-hoc pool group.
type ManualGroupRequest struct {
	Label string // shown in place of a request id
	Items []item.Item
}

// ManualGroupResponse identifies the created group.
type ManualGroupResponse struct {
	GroupID   string
	RequestID string
}

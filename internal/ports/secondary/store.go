// Package secondary defines the secondary ports (driven adapters) for the
// application: the named record collections of the planning store. Each
// collection is independently keyed by an opaque id and supports get-all,
// get-by-id, add, partial update, and delete.
package secondary

import (
	"context"

	"github.com/example/labops/internal/core/item"
)

// BatchChunkSize is the maximum number of records one physical batch
// operation may carry. Batches must be issued sequentially, each awaited
// before the next begins.
const BatchChunkSize = 400

// TaskGroupRecord represents a pool task group as stored in persistence.
// Returned-pool entries carry the return metadata; ordinary pool groups
// leave those fields zero.
type TaskGroupRecord struct {
	ID             string
	RequestID      string
	Category       string
	Order          int
	HasOrder       bool
	IsReturnedPool bool
	ReturnReason   string
	ReturnedBy     string
	Shift          string
	CreatedAt      string
	Items          []item.Item
}

// TaskGroupFilters contains filter options for querying pool groups.
type TaskGroupFilters struct {
	Category     string
	ReturnedOnly bool
}

// TaskGroupRepository defines the secondary port for the categorizedTasks
// collection.
type TaskGroupRepository interface {
	// Create persists a new task group.
	Create(ctx context.Context, group *TaskGroupRecord) error

	// GetByID retrieves a task group by its id.
	GetByID(ctx context.Context, id string) (*TaskGroupRecord, error)

	// List retrieves task groups matching the given filters.
	List(ctx context.Context, filters TaskGroupFilters) ([]*TaskGroupRecord, error)

	// UpdateItems replaces the item list of a group.
	UpdateItems(ctx context.Context, id string, items []item.Item) error

	// SetOrder sets the explicit sort position of a group.
	SetOrder(ctx context.Context, id string, order int) error

	// SetCategory moves a group to a different triage bucket.
	SetCategory(ctx context.Context, id string, category string) error

	// Delete removes a task group.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes many groups, chunked per BatchChunkSize with
	// each chunk awaited before the next.
	DeleteMany(ctx context.Context, ids []string) error
}

// AssignedTaskRecord represents an execution assignment: a subset of one
// request's items bound to a tester, date, and shift.
type AssignedTaskRecord struct {
	ID        string
	RequestID string
	Category  string
	TesterID  string
	Date      string
	Shift     string
	Status    string
	CreatedAt string
	Items     []item.Item
}

// AssignedTaskFilters contains filter options for querying assignments.
type AssignedTaskFilters struct {
	Date     string
	Shift    string
	TesterID string
}

// AssignedTaskRepository defines the secondary port for the assignedTasks
// collection.
type AssignedTaskRepository interface {
	Create(ctx context.Context, task *AssignedTaskRecord) error
	GetByID(ctx context.Context, id string) (*AssignedTaskRecord, error)
	List(ctx context.Context, filters AssignedTaskFilters) ([]*AssignedTaskRecord, error)
	UpdateItems(ctx context.Context, id string, items []item.Item) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

// PrepareTaskRecord represents a preparation assignment bound to an
// assistant, linked back to its originating pool group so completion can
// be synced.
type PrepareTaskRecord struct {
	ID              string
	RequestID       string
	Category        string
	AssistantID     string
	Date            string
	Shift           string
	CreatedAt       string
	OriginalDocID   string
	OriginalIndices []int
	Items           []item.Item
}

// PrepareTaskFilters contains filter options for querying preparations.
type PrepareTaskFilters struct {
	Date        string
	Shift       string
	AssistantID string
}

// PrepareTaskRepository defines the secondary port for the
// assignedPrepareTasks collection.
type PrepareTaskRepository interface {
	Create(ctx context.Context, task *PrepareTaskRecord) error
	GetByID(ctx context.Context, id string) (*PrepareTaskRecord, error)
	List(ctx context.Context, filters PrepareTaskFilters) ([]*PrepareTaskRecord, error)
	UpdateItems(ctx context.Context, id string, items []item.Item) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

// TesterRecord represents a person on the lab roster.
type TesterRecord struct {
	ID   string
	Name string
	Team string // "testers" or "assistants"
}

// TesterRepository defines the secondary port for the testers collection.
type TesterRepository interface {
	Create(ctx context.Context, tester *TesterRecord) error
	GetByID(ctx context.Context, id string) (*TesterRecord, error)
	List(ctx context.Context, team string) ([]*TesterRecord, error)
	Update(ctx context.Context, tester *TesterRecord) error
	Delete(ctx context.Context, id string) error
}

// MappingRecord represents one test mapping rule row.
type MappingRecord struct {
	ID          string
	Description string
	Variant     string
	HeaderGroup string
	HeaderSub   string
	Order       int
	HasOrder    bool
}

// MappingRepository defines the secondary port for the testMappings
// collection.
type MappingRepository interface {
	Create(ctx context.Context, mapping *MappingRecord) error
	GetAll(ctx context.Context) ([]*MappingRecord, error)
	Update(ctx context.Context, mapping *MappingRecord) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

// ScheduleRecord holds the four shift id lists for one date. The date
// string is the record key.
type ScheduleRecord struct {
	Date            string
	DayTesters      []string
	NightTesters    []string
	DayAssistants   []string
	NightAssistants []string
}

// ScheduleRepository defines the secondary port for the dailySchedules
// collection. Put replaces the whole record for its date.
type ScheduleRepository interface {
	Get(ctx context.Context, date string) (*ScheduleRecord, error)
	Put(ctx context.Context, schedule *ScheduleRecord) error
	Delete(ctx context.Context, date string) error
}

// ShiftReportRecord is the end-of-shift housekeeping report, keyed by
// "{date}_{shift}" and persisted verbatim.
type ShiftReportRecord struct {
	Date             string
	Shift            string
	InstrumentHealth string
	WasteLevel       string
	Cleanliness      string
	Notes            string
	UpdatedAt        string
}

// ShiftReportRepository defines the secondary port for the shiftReports
// collection.
type ShiftReportRepository interface {
	Get(ctx context.Context, date, shift string) (*ShiftReportRecord, error)
	Put(ctx context.Context, report *ShiftReportRecord) error
}

package primary

import "context"

// ScheduleService defines the primary port for the daily roster.
type ScheduleService interface {
	// Assign puts a person on the named shift for a date, removing them
	// from the opposite shift of the same team.
	Assign(ctx context.Context, req ScheduleRequest) error

	// Remove takes a person off the named shift only.
	Remove(ctx context.Context, req ScheduleRequest) error

	// Get returns the schedule for a date, empty if none is stored.
	Get(ctx context.Context, date string) (*ScheduleView, error)
}

// ScheduleRequest contains parameters for a roster mutation.
type ScheduleRequest struct {
	PersonID string
	Date     string
	Shift    string // "day" or "night"
}

// ScheduleView is the resolved schedule for one date.
type ScheduleView struct {
	Date            string
	DayTesters      []PersonRef
	NightTesters    []PersonRef
	DayAssistants   []PersonRef
	NightAssistants []PersonRef
}

// PersonRef is a roster person with their display name resolved.
type PersonRef struct {
	ID   string
	Name string
}

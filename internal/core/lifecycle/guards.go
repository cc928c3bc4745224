// Package lifecycle contains the pure precondition guards for task item
// state transitions. Guards evaluate without side effects; the service
// layer consults them before touching the store.
package lifecycle

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AssignContext provides context for the assignment guards.
type AssignContext struct {
	PersonID     string
	PersonExists bool
	Date         string
	Shift        string
	ItemCount    int
}

// CanAssign evaluates whether a set of selected items can be assigned.
// Rules:
// - At least one item must be selected
// - The target person must exist
// - Date and shift must be supplied
func CanAssign(ctx AssignContext) GuardResult {
	if ctx.ItemCount == 0 {
		return GuardResult{Allowed: false, Reason: "no items selected"}
	}
	if !ctx.PersonExists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("person %s not found", ctx.PersonID),
		}
	}
	if ctx.Date == "" {
		return GuardResult{Allowed: false, Reason: "assignment date is required"}
	}
	if ctx.Shift == "" {
		return GuardResult{Allowed: false, Reason: "assignment shift is required"}
	}
	return GuardResult{Allowed: true}
}

// CanMarkNotOK evaluates whether an item can be flagged Not OK.
// Rules:
// - A failure reason must be given
func CanMarkNotOK(reason string) GuardResult {
	if strings.TrimSpace(reason) == "" {
		return GuardResult{Allowed: false, Reason: "a failure reason is required"}
	}
	return GuardResult{Allowed: true}
}

// CanReturn evaluates whether an item can be returned to the pool.
// Rules:
// - A return reason must be given
// - The reporter must be identified
func CanReturn(reason, reportedBy string) GuardResult {
	if strings.TrimSpace(reason) == "" {
		return GuardResult{Allowed: false, Reason: "a return reason is required"}
	}
	if strings.TrimSpace(reportedBy) == "" {
		return GuardResult{Allowed: false, Reason: "the reporting tester is required"}
	}
	return GuardResult{Allowed: true}
}

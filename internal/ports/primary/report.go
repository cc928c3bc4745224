package primary

import "context"

// ReportService defines the primary port for end-of-shift reports.
type ReportService interface {
	// SaveReport stores the report for a (date, shift), replacing any
	// previous one.
	SaveReport(ctx context.Context, req ShiftReport) error

	// GetReport retrieves the report for a (date, shift), nil if none.
	GetReport(ctx context.Context, date, shift string) (*ShiftReport, error)
}

// ShiftReport is the housekeeping record for one shift, persisted
// verbatim and independent of the task lifecycle.
type ShiftReport struct {
	Date             string
	Shift            string
	InstrumentHealth string
	WasteLevel       string
	Cleanliness      string
	Notes            string
	UpdatedAt        string
}

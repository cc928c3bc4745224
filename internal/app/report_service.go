package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/labops/internal/core/schedule"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	reportRepo secondary.ShiftReportRepository
}

// NewReportService creates a new ReportService with injected
// dependencies.
func NewReportService(reportRepo secondary.ShiftReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

// SaveReport stores the report for its (date, shift), replacing any
// previous one and stamping the update time.
func (s *ReportServiceImpl) SaveReport(ctx context.Context, req primary.ShiftReport) error {
	if req.Date == "" {
		return fmt.Errorf("a report date is required")
	}
	if req.Shift != schedule.ShiftDay && req.Shift != schedule.ShiftNight {
		return fmt.Errorf("unknown shift %q", req.Shift)
	}

	record := &secondary.ShiftReportRecord{
		Date:             req.Date,
		Shift:            req.Shift,
		InstrumentHealth: req.InstrumentHealth,
		WasteLevel:       req.WasteLevel,
		Cleanliness:      req.Cleanliness,
		Notes:            req.Notes,
		UpdatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.reportRepo.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}
	return nil
}

// GetReport retrieves the report for a (date, shift), nil if none has
// been filed.
func (s *ReportServiceImpl) GetReport(ctx context.Context, date, shift string) (*primary.ShiftReport, error) {
	record, err := s.reportRepo.Get(ctx, date, shift)
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return &primary.ShiftReport{
		Date:             record.Date,
		Shift:            record.Shift,
		InstrumentHealth: record.InstrumentHealth,
		WasteLevel:       record.WasteLevel,
		Cleanliness:      record.Cleanliness,
		Notes:            record.Notes,
		UpdatedAt:        record.UpdatedAt,
	}, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/labops/internal/ports/secondary"
)

// ShiftReportRepository implements secondary.ShiftReportRepository with
// SQLite. Reports are keyed "{date}_{shift}" and stored verbatim.
type ShiftReportRepository struct {
	db *sql.DB
}

// NewShiftReportRepository creates a new SQLite shift report repository.
func NewShiftReportRepository(db *sql.DB) *ShiftReportRepository {
	return &ShiftReportRepository{db: db}
}

func reportKey(date, shift string) string {
	return date + "_" + shift
}

// Get retrieves the report for a (date, shift), nil when none is stored.
func (r *ShiftReportRepository) Get(ctx context.Context, date, shift string) (*secondary.ShiftReportRecord, error) {
	var (
		instrumentHealth sql.NullString
		wasteLevel       sql.NullString
		cleanliness      sql.NullString
		notes            sql.NullString
		updatedAt        time.Time
	)

	record := &secondary.ShiftReportRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT date, shift, instrument_health, waste_level, cleanliness, notes, updated_at FROM shift_reports WHERE id = ?",
		reportKey(date, shift),
	).Scan(&record.Date, &record.Shift, &instrumentHealth, &wasteLevel, &cleanliness, &notes, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift report: %w", err)
	}

	record.InstrumentHealth = instrumentHealth.String
	record.WasteLevel = wasteLevel.String
	record.Cleanliness = cleanliness.String
	record.Notes = notes.String
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Put stores the report for its (date, shift), replacing any previous one.
func (r *ShiftReportRepository) Put(ctx context.Context, report *secondary.ShiftReportRecord) error {
	updatedAt := report.UpdatedAt
	if updatedAt == "" {
		updatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shift_reports (id, date, shift, instrument_health, waste_level, cleanliness, notes, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 instrument_health = excluded.instrument_health,
		 waste_level = excluded.waste_level,
		 cleanliness = excluded.cleanliness,
		 notes = excluded.notes,
		 updated_at = excluded.updated_at`,
		reportKey(report.Date, report.Shift), report.Date, report.Shift,
		report.InstrumentHealth, report.WasteLevel, report.Cleanliness, report.Notes,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put shift report: %w", err)
	}
	return nil
}

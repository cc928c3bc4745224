package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/labops/internal/ports/secondary"
)

// ScheduleRepository implements secondary.ScheduleRepository with SQLite.
// The date string is the record key; Put replaces the whole record.
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new SQLite schedule repository.
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Get retrieves the schedule for a date. A date with no stored record
// yields an empty schedule, not an error.
func (r *ScheduleRepository) Get(ctx context.Context, date string) (*secondary.ScheduleRecord, error) {
	var dayT, nightT, dayA, nightA string
	err := r.db.QueryRowContext(ctx,
		"SELECT day_testers, night_testers, day_assistants, night_assistants FROM daily_schedules WHERE date = ?",
		date,
	).Scan(&dayT, &nightT, &dayA, &nightA)
	if err == sql.ErrNoRows {
		return &secondary.ScheduleRecord{Date: date}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	record := &secondary.ScheduleRecord{Date: date}
	if record.DayTesters, err = decodeIDs(dayT); err != nil {
		return nil, err
	}
	if record.NightTesters, err = decodeIDs(nightT); err != nil {
		return nil, err
	}
	if record.DayAssistants, err = decodeIDs(dayA); err != nil {
		return nil, err
	}
	if record.NightAssistants, err = decodeIDs(nightA); err != nil {
		return nil, err
	}
	return record, nil
}

// Put stores the schedule for its date, replacing all four lists.
// Last write wins at date granularity.
func (r *ScheduleRepository) Put(ctx context.Context, schedule *secondary.ScheduleRecord) error {
	dayT, err := encodeIDs(schedule.DayTesters)
	if err != nil {
		return err
	}
	nightT, err := encodeIDs(schedule.NightTesters)
	if err != nil {
		return err
	}
	dayA, err := encodeIDs(schedule.DayAssistants)
	if err != nil {
		return err
	}
	nightA, err := encodeIDs(schedule.NightAssistants)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO daily_schedules (date, day_testers, night_testers, day_assistants, night_assistants)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		 day_testers = excluded.day_testers,
		 night_testers = excluded.night_testers,
		 day_assistants = excluded.day_assistants,
		 night_assistants = excluded.night_assistants`,
		schedule.Date, dayT, nightT, dayA, nightA,
	)
	if err != nil {
		return fmt.Errorf("failed to put schedule: %w", err)
	}
	return nil
}

// Delete removes the schedule record for a date.
func (r *ScheduleRepository) Delete(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM daily_schedules WHERE date = ?", date); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

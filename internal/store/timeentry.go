package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/timeentry"
)

const timeEntryColumns = `id, user_id, project_id, description, start_time, end_time, duration,
	hourly_rate, total_cost, created_at, updated_at`

// TimeEntryRepository implements timeentry.Repository.
type TimeEntryRepository struct {
	db *DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository.
func NewTimeEntryRepository(db *DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func scanTimeEntry(s scanner) (*timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := s.Scan(
		&e.ID,
		&e.UserID,
		&e.ProjectID,
		&e.Description,
		&e.StartTime,
		&e.EndTime,
		&e.Duration,
		&e.HourlyRate,
		&e.TotalCost,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByProject returns the user's time entries for a project.
func (r *TimeEntryRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]timeentry.TimeEntry, error) {
	entries, err := queryList(ctx, r.db, scanTimeEntry,
		"SELECT "+timeEntryColumns+" FROM time_entries WHERE user_id = ? AND project_id = ? ORDER BY id ASC",
		userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

// Create inserts e and sets its ID.
func (r *TimeEntryRepository) Create(ctx context.Context, e *timeentry.TimeEntry) error {
	if err := requireOwned(ctx, r.db, "projects", e.UserID, e.ProjectID); err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}

	query := `
		INSERT INTO time_entries (user_id, project_id, description, start_time, end_time, duration,
			hourly_rate, total_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		e.UserID,
		e.ProjectID,
		e.Description,
		e.StartTime,
		e.EndTime,
		e.Duration,
		e.HourlyRate,
		e.TotalCost,
		e.CreatedAt,
		e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	return nil
}

// Delete removes a time entry owned by the user.
func (r *TimeEntryRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "time_entries", userID, id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

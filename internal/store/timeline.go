package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/timeline"
)

// TimelineRepository implements timeline.Repository.
type TimelineRepository struct {
	db *DB
}

// NewTimelineRepository creates a new TimelineRepository.
func NewTimelineRepository(db *DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

func scanEvent(s scanner) (*timeline.Event, error) {
	var e timeline.Event
	if err := s.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.EventType, &e.Description, &e.EventDate, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *TimelineRepository) ListByProject(ctx context.Context, userID, projectID int64) ([]timeline.Event, error) {
	events, err := queryList(ctx, r.db, scanEvent, `
		SELECT id, user_id, project_id, event_type, description, event_date, created_at
		FROM timeline
		WHERE user_id = ? AND project_id = ?
		ORDER BY id ASC
	`, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}

func (r *TimelineRepository) Create(ctx context.Context, e *timeline.Event) error {
	if err := requireOwned(ctx, r.db, "projects", e.UserID, e.ProjectID); err != nil {
		return fmt.Errorf("failed to create timeline event: %w", err)
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO timeline (user_id, project_id, event_type, description, event_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, e.UserID, e.ProjectID, e.EventType, e.Description, e.EventDate, e.CreatedAt).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create timeline event: %w", err)
	}
	return nil
}

func (r *TimelineRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "timeline", userID, id); err != nil {
		return fmt.Errorf("failed to delete timeline event: %w", err)
	}
	return nil
}

package timeentry

import "context"

// Repository provides persistence for time entries.
type Repository interface {
	ListByProject(ctx context.Context, userID, projectID int64) ([]TimeEntry, error)
	Create(ctx context.Context, e *TimeEntry) error
	Delete(ctx context.Context, userID, id int64) error
}

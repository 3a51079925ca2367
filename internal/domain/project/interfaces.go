package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Project, error)
	Get(ctx context.Context, userID, id int64) (*Project, error)
	Create(ctx context.Context, proj *Project) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

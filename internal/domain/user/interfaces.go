package user

import "context"

// Repository provides persistence for users.
type Repository interface {
	Upsert(ctx context.Context, u Upsert) (*User, error)
	Get(ctx context.Context, id int64) (*User, error)
	GetByOpenID(ctx context.Context, openID string) (*User, error)
}

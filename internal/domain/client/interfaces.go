package client

import "context"

// Repository provides persistence for clients.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Client, error)
	Get(ctx context.Context, userID, id int64) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

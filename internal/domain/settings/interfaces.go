package settings

import "context"

// Repository provides persistence for business settings.
type Repository interface {
	Get(ctx context.Context, userID int64) (*BusinessSettings, error)
	// CreateIfMissing inserts s unless the user already has a row.
	CreateIfMissing(ctx context.Context, s *BusinessSettings) error
	Update(ctx context.Context, userID int64, patch Patch) error
	// Advance increments the counter for seq and returns the prefix and the
	// number that was current before the increment.
	Advance(ctx context.Context, userID int64, seq Sequence) (string, int64, error)
}

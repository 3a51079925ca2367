package recurring

import (
	"context"

	"github.com/rpggio/tradeledger/internal/apperr"
)

// ErrRecurringNotFound indicates the schedule doesn't exist or belongs to another user.
var ErrRecurringNotFound = apperr.New(apperr.CodeNotFound, "recurring invoice not found")

// Repository provides persistence for recurring invoice schedules.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Invoice, error)
	Get(ctx context.Context, userID, id int64) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

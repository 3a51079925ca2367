package invoice

import (
	"context"

	"github.com/rpggio/tradeledger/internal/domain/settings"
)

// Repository provides persistence for invoices and their line items.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Invoice, error)
	Get(ctx context.Context, userID, id int64) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error

	ListItems(ctx context.Context, userID, invoiceID int64) ([]Item, error)
	AddItem(ctx context.Context, item *Item) error
	RemoveItem(ctx context.Context, userID, itemID int64) error
}

// Numberer reserves document numbers.
type Numberer interface {
	NextNumber(ctx context.Context, userID int64, seq settings.Sequence) (string, error)
}

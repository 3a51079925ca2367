package payment

import "context"

// Repository provides persistence for payments.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Payment, error)
	ListByInvoice(ctx context.Context, userID, invoiceID int64) ([]Payment, error)
	Create(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, userID, id int64) error
}

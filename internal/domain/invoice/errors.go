package invoice

import "github.com/rpggio/tradeledger/internal/apperr"

var (
	// ErrInvoiceNotFound indicates the invoice doesn't exist or belongs to another user.
	ErrInvoiceNotFound = apperr.New(apperr.CodeNotFound, "invoice not found")
	// ErrItemNotFound indicates the line item doesn't exist or belongs to another user.
	ErrItemNotFound = apperr.New(apperr.CodeNotFound, "invoice item not found")
)

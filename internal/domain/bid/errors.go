package bid

import "github.com/rpggio/tradeledger/internal/apperr"

var (
	// ErrBidNotFound indicates the bid doesn't exist or belongs to another user.
	ErrBidNotFound = apperr.New(apperr.CodeNotFound, "bid not found")
	// ErrItemNotFound indicates the line item doesn't exist or belongs to another user.
	ErrItemNotFound = apperr.New(apperr.CodeNotFound, "bid item not found")
)

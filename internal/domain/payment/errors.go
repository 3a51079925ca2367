package payment

import "github.com/rpggio/tradeledger/internal/apperr"

// ErrPaymentNotFound indicates the payment doesn't exist or belongs to another user.
var ErrPaymentNotFound = apperr.New(apperr.CodeNotFound, "payment not found")

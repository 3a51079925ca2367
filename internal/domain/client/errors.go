package client

import "github.com/rpggio/tradeledger/internal/apperr"

// ErrClientNotFound indicates the client doesn't exist or belongs to another user.
var ErrClientNotFound = apperr.New(apperr.CodeNotFound, "client not found")

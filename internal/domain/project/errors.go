package project

import "github.com/rpggio/tradeledger/internal/apperr"

// ErrProjectNotFound indicates the project doesn't exist or belongs to another user.
var ErrProjectNotFound = apperr.New(apperr.CodeNotFound, "project not found")

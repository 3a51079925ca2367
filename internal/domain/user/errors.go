package user

import "github.com/rpggio/tradeledger/internal/apperr"

var (
	// ErrUserNotFound indicates no user matches the identity.
	ErrUserNotFound = apperr.New(apperr.CodeNotFound, "user not found")
	// ErrOpenIDRequired indicates an upsert without an external identity.
	ErrOpenIDRequired = apperr.New(apperr.CodeInvalidInput, "user openId is required for upsert")
)

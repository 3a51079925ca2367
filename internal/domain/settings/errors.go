package settings

import "github.com/rpggio/tradeledger/internal/apperr"

// ErrSettingsNotFound indicates the user has no settings row.
var ErrSettingsNotFound = apperr.New(apperr.CodeNotFound, "business settings not found")

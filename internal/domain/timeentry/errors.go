package timeentry

import "github.com/rpggio/tradeledger/internal/apperr"

var (
	// ErrTimeEntryNotFound indicates the entry doesn't exist or belongs to another user.
	ErrTimeEntryNotFound = apperr.New(apperr.CodeNotFound, "time entry not found")
	// ErrEndBeforeStart indicates an entry that finishes before it starts.
	ErrEndBeforeStart = apperr.Invalid("endTime", "must not be before startTime")
)

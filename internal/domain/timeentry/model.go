package timeentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEntry is a block of work logged against a project. Duration is in
// whole minutes.
type TimeEntry struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"userId"`
	ProjectID   int64               `json:"projectId"`
	Description *string             `json:"description"`
	StartTime   time.Time           `json:"startTime"`
	EndTime     *time.Time          `json:"endTime"`
	Duration    int64               `json:"duration"`
	HourlyRate  decimal.NullDecimal `json:"hourlyRate"`
	TotalCost   decimal.Decimal     `json:"totalCost"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

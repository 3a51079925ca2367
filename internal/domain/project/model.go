package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a project's lifecycle stage. Any status may replace any other.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Statuses lists every valid project status.
var Statuses = []Status{StatusPlanning, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled}

// Project is a job carried out for a client.
type Project struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"userId"`
	ClientID    int64               `json:"clientId"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Status      Status              `json:"status"`
	StartDate   *time.Time          `json:"startDate"`
	EndDate     *time.Time          `json:"endDate"`
	Budget      decimal.NullDecimal `json:"budget"`
	Progress    int64               `json:"progress"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Name        *string
	Description *string
	Status      *Status
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *decimal.Decimal
	Progress    *int64
	UpdatedAt   time.Time
}

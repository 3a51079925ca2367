package recurring

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often a schedule bills.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies lists every valid billing frequency.
var Frequencies = []Frequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly}

// Status is a schedule's state.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid schedule status.
var Statuses = []Status{StatusActive, StatusPaused, StatusCancelled}

// Invoice is a stored recurring billing schedule. Nothing generates
// invoices from it.
type Invoice struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	ClientID        int64           `json:"clientId"`
	ProjectID       *int64          `json:"projectId"`
	Name            string          `json:"name"`
	Frequency       Frequency       `json:"frequency"`
	Status          Status          `json:"status"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Total           decimal.Decimal `json:"total"`
	NextInvoiceDate *time.Time      `json:"nextInvoiceDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Name            *string
	Frequency       *Frequency
	Status          *Status
	EndDate         *time.Time
	Subtotal        *decimal.Decimal
	TaxAmount       *decimal.Decimal
	Total           *decimal.Decimal
	NextInvoiceDate *time.Time
	UpdatedAt       time.Time
}

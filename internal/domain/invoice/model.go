package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is an invoice's billing state. Transitions are not constrained.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusSent          Status = "sent"
	StatusViewed        Status = "viewed"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
	StatusOverdue       Status = "overdue"
	StatusCancelled     Status = "cancelled"
)

// Statuses lists every valid invoice status.
var Statuses = []Status{
	StatusDraft, StatusSent, StatusViewed, StatusPartiallyPaid,
	StatusPaid, StatusOverdue, StatusCancelled,
}

// Invoice is a bill issued to a client.
type Invoice struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	ClientID      int64           `json:"clientId"`
	ProjectID     *int64          `json:"projectId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Status        Status          `json:"status"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       *time.Time      `json:"dueDate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	Notes         *string         `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Item is a line on an invoice. Total is quantity times unit price.
type Item struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoiceId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Status    *Status
	IssueDate *time.Time
	DueDate   *time.Time
	Subtotal  *decimal.Decimal
	TaxAmount *decimal.Decimal
	Total     *decimal.Decimal
	Notes     *string
	UpdatedAt time.Time
}

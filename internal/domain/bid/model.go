package bid

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a bid's negotiation state.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Statuses lists every valid bid status.
var Statuses = []Status{StatusDraft, StatusSent, StatusViewed, StatusAccepted, StatusRejected, StatusExpired}

// Bid is an estimate offered to a client.
type Bid struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	ClientID   int64           `json:"clientId"`
	ProjectID  *int64          `json:"projectId"`
	BidNumber  string          `json:"bidNumber"`
	Status     Status          `json:"status"`
	IssueDate  time.Time       `json:"issueDate"`
	ExpiryDate *time.Time      `json:"expiryDate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Total      decimal.Decimal `json:"total"`
	Notes      *string         `json:"notes"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Item is a line on a bid.
type Item struct {
	ID          int64           `json:"id"`
	BidID       int64           `json:"bidId"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Status     *Status
	ExpiryDate *time.Time
	Subtotal   *decimal.Decimal
	TaxAmount  *decimal.Decimal
	Total      *decimal.Decimal
	Notes      *string
	UpdatedAt  time.Time
}

package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method is how a payment was made.
type Method string

const (
	MethodCard         Method = "card"
	MethodCash         Method = "cash"
	MethodCheck        Method = "check"
	MethodBankTransfer Method = "bank_transfer"
	MethodOther        Method = "other"
)

// Methods lists every valid payment method.
var Methods = []Method{MethodCard, MethodCash, MethodCheck, MethodBankTransfer, MethodOther}

// Status is a payment's settlement state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// Statuses lists every valid payment status.
var Statuses = []Status{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}

// Payment is money recorded against an invoice. No reconciliation against
// the invoice total takes place.
type Payment struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	InvoiceID     int64           `json:"invoiceId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod Method          `json:"paymentMethod"`
	Status        Status          `json:"status"`
	TransactionID *string         `json:"transactionId"`
	Notes         *string         `json:"notes"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied when a user's settings row is first created.
const (
	DefaultCompanyName   = "My Company"
	DefaultInvoicePrefix = "INV"
	DefaultBidPrefix     = "BID"
	DefaultFirstNumber   = 1001
)

// Sequence identifies a document numbering counter.
type Sequence string

const (
	SequenceInvoice Sequence = "invoice"
	SequenceBid     Sequence = "bid"
)

// BusinessSettings holds company details and document numbering state for
// one user.
type BusinessSettings struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"userId"`
	CompanyName       string          `json:"companyName"`
	CompanyEmail      *string         `json:"companyEmail"`
	CompanyPhone      *string         `json:"companyPhone"`
	CompanyAddress    *string         `json:"companyAddress"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	PaymentTerms      *string         `json:"paymentTerms"`
	InvoicePrefix     string          `json:"invoicePrefix"`
	BidPrefix         string          `json:"bidPrefix"`
	NextInvoiceNumber int64           `json:"nextInvoiceNumber"`
	NextBidNumber     int64           `json:"nextBidNumber"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	CompanyName    *string
	CompanyEmail   *string
	CompanyPhone   *string
	CompanyAddress *string
	TaxRate        *decimal.Decimal
	PaymentTerms   *string
	InvoicePrefix  *string
	BidPrefix      *string
	UpdatedAt      time.Time
}

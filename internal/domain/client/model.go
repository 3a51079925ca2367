package client

import "time"

// Client is a customer the business invoices and bids for.
type Client struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zipCode"`
	Country   *string   `json:"country"`
	TaxID     *string   `json:"taxId"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Name      *string
	Email     *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	TaxID     *string
	Notes     *string
	UpdatedAt time.Time
}

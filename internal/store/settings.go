package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/settings"
)

const settingsColumns = `id, user_id, company_name, company_email, company_phone, company_address,
	tax_rate, payment_terms, invoice_prefix, bid_prefix, next_invoice_number, next_bid_number,
	created_at, updated_at`

// SettingsRepository implements settings.Repository.
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func scanSettings(s scanner) (*settings.BusinessSettings, error) {
	var bs settings.BusinessSettings
	err := s.Scan(
		&bs.ID,
		&bs.UserID,
		&bs.CompanyName,
		&bs.CompanyEmail,
		&bs.CompanyPhone,
		&bs.CompanyAddress,
		&bs.TaxRate,
		&bs.PaymentTerms,
		&bs.InvoicePrefix,
		&bs.BidPrefix,
		&bs.NextInvoiceNumber,
		&bs.NextBidNumber,
		&bs.CreatedAt,
		&bs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bs, nil
}

// Get retrieves the settings row for a user.
func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*settings.BusinessSettings, error) {
	bs, err := scanSettings(r.db.QueryRowContext(ctx,
		"SELECT "+settingsColumns+" FROM business_settings WHERE user_id = ?", userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get business settings: %w", err)
	}
	return bs, nil
}

// CreateIfMissing inserts the row unless the user already has one.
func (r *SettingsRepository) CreateIfMissing(ctx context.Context, bs *settings.BusinessSettings) error {
	query := `
		INSERT INTO business_settings (
			user_id, company_name, company_email, company_phone, company_address,
			tax_rate, payment_terms, invoice_prefix, bid_prefix,
			next_invoice_number, next_bid_number, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		bs.UserID,
		bs.CompanyName,
		bs.CompanyEmail,
		bs.CompanyPhone,
		bs.CompanyAddress,
		bs.TaxRate,
		bs.PaymentTerms,
		bs.InvoicePrefix,
		bs.BidPrefix,
		bs.NextInvoiceNumber,
		bs.NextBidNumber,
		bs.CreatedAt,
		bs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create business settings: %w", err)
	}
	return nil
}

// Update applies a partial update to the user's settings.
func (r *SettingsRepository) Update(ctx context.Context, userID int64, patch settings.Patch) error {
	u := newUpdate("business_settings", patch.UpdatedAt)
	setIfPresent(u, "company_name", patch.CompanyName)
	setIfPresent(u, "company_email", patch.CompanyEmail)
	setIfPresent(u, "company_phone", patch.CompanyPhone)
	setIfPresent(u, "company_address", patch.CompanyAddress)
	setIfPresent(u, "tax_rate", patch.TaxRate)
	setIfPresent(u, "payment_terms", patch.PaymentTerms)
	setIfPresent(u, "invoice_prefix", patch.InvoicePrefix)
	setIfPresent(u, "bid_prefix", patch.BidPrefix)

	if err := u.exec(ctx, r.db, "user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to update business settings: %w", err)
	}
	return nil
}

// Advance increments the counter for seq in one statement and returns the
// prefix with the value it held before the increment.
func (r *SettingsRepository) Advance(ctx context.Context, userID int64, seq settings.Sequence) (string, int64, error) {
	var prefixColumn, counterColumn string
	switch seq {
	case settings.SequenceInvoice:
		prefixColumn, counterColumn = "invoice_prefix", "next_invoice_number"
	case settings.SequenceBid:
		prefixColumn, counterColumn = "bid_prefix", "next_bid_number"
	default:
		return "", 0, fmt.Errorf("unknown sequence %q", seq)
	}

	query := fmt.Sprintf(`
		UPDATE business_settings
		SET %[2]s = %[2]s + 1
		WHERE user_id = ?
		RETURNING %[1]s, %[2]s - 1
	`, prefixColumn, counterColumn)

	var prefix string
	var n int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&prefix, &n); err != nil {
		return "", 0, fmt.Errorf("failed to advance %s number: %w", seq, err)
	}
	return prefix, n, nil
}

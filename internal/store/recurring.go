package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/recurring"
)

const recurringColumns = `id, user_id, client_id, project_id, name, frequency, status, start_date, end_date,
	subtotal, tax_amount, total, next_invoice_date, created_at, updated_at`

// RecurringRepository implements recurring.Repository.
type RecurringRepository struct {
	db *DB
}

// NewRecurringRepository creates a new RecurringRepository.
func NewRecurringRepository(db *DB) *RecurringRepository {
	return &RecurringRepository{db: db}
}

func scanRecurring(s scanner) (*recurring.Invoice, error) {
	var inv recurring.Invoice
	err := s.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.ClientID,
		&inv.ProjectID,
		&inv.Name,
		&inv.Frequency,
		&inv.Status,
		&inv.StartDate,
		&inv.EndDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Total,
		&inv.NextInvoiceDate,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *RecurringRepository) List(ctx context.Context, userID int64) ([]recurring.Invoice, error) {
	list, err := queryList(ctx, r.db, scanRecurring,
		"SELECT "+recurringColumns+" FROM recurring_invoices WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring invoices: %w", err)
	}
	return list, nil
}

func (r *RecurringRepository) Get(ctx context.Context, userID, id int64) (*recurring.Invoice, error) {
	inv, err := scanRecurring(r.db.QueryRowContext(ctx,
		"SELECT "+recurringColumns+" FROM recurring_invoices WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring invoice: %w", err)
	}
	return inv, nil
}

func (r *RecurringRepository) Create(ctx context.Context, inv *recurring.Invoice) error {
	if err := requireOwned(ctx, r.db, "clients", inv.UserID, inv.ClientID); err != nil {
		return fmt.Errorf("failed to create recurring invoice: %w", err)
	}
	if err := requireOwnedIfSet(ctx, r.db, "projects", inv.UserID, inv.ProjectID); err != nil {
		return fmt.Errorf("failed to create recurring invoice: %w", err)
	}

	query := `
		INSERT INTO recurring_invoices (user_id, client_id, project_id, name, frequency, status, start_date,
			end_date, subtotal, tax_amount, total, next_invoice_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inv.UserID,
		inv.ClientID,
		inv.ProjectID,
		inv.Name,
		inv.Frequency,
		inv.Status,
		inv.StartDate,
		inv.EndDate,
		inv.Subtotal,
		inv.TaxAmount,
		inv.Total,
		inv.NextInvoiceDate,
		inv.CreatedAt,
		inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("failed to create recurring invoice: %w", err)
	}
	return nil
}

func (r *RecurringRepository) Update(ctx context.Context, userID, id int64, patch recurring.Patch) error {
	u := newUpdate("recurring_invoices", patch.UpdatedAt)
	setIfPresent(u, "name", patch.Name)
	setIfPresent(u, "frequency", patch.Frequency)
	setIfPresent(u, "status", patch.Status)
	setIfPresent(u, "end_date", patch.EndDate)
	setIfPresent(u, "subtotal", patch.Subtotal)
	setIfPresent(u, "tax_amount", patch.TaxAmount)
	setIfPresent(u, "total", patch.Total)
	setIfPresent(u, "next_invoice_date", patch.NextInvoiceDate)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update recurring invoice: %w", err)
	}
	return nil
}

func (r *RecurringRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "recurring_invoices", userID, id); err != nil {
		return fmt.Errorf("failed to delete recurring invoice: %w", err)
	}
	return nil
}

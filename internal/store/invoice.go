package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/invoice"
)

const invoiceColumns = `id, user_id, client_id, project_id, invoice_number, status, issue_date, due_date,
	subtotal, tax_amount, total, notes, created_at, updated_at`

const invoiceItemColumns = "i.id, i.invoice_id, i.description, i.quantity, i.unit_price, i.total, i.created_at"

// InvoiceRepository implements invoice.Repository.
type InvoiceRepository struct {
	db *DB
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	err := s.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.ClientID,
		&inv.ProjectID,
		&inv.InvoiceNumber,
		&inv.Status,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.Total,
		&inv.Notes,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func scanInvoiceItem(s scanner) (*invoice.Item, error) {
	var item invoice.Item
	err := s.Scan(
		&item.ID,
		&item.InvoiceID,
		&item.Description,
		&item.Quantity,
		&item.UnitPrice,
		&item.Total,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns the user's invoices in creation order.
func (r *InvoiceRepository) List(ctx context.Context, userID int64) ([]invoice.Invoice, error) {
	invoices, err := queryList(ctx, r.db, scanInvoice,
		"SELECT "+invoiceColumns+" FROM invoices WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// Get retrieves an invoice owned by the user.
func (r *InvoiceRepository) Get(ctx context.Context, userID, id int64) (*invoice.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRowContext(ctx,
		"SELECT "+invoiceColumns+" FROM invoices WHERE id = ? AND user_id = ?", id, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

// Create inserts inv and sets its ID. A duplicate number for the same user
// yields repository.ErrConflict.
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if err := requireOwned(ctx, r.db, "clients", inv.UserID, inv.ClientID); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	if err := requireOwnedIfSet(ctx, r.db, "projects", inv.UserID, inv.ProjectID); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	query := `
		INSERT INTO invoices (user_id, client_id, project_id, invoice_number, status, issue_date, due_date,
			subtotal, tax_amount, total, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inv.UserID,
		inv.ClientID,
		inv.ProjectID,
		inv.InvoiceNumber,
		inv.Status,
		inv.IssueDate,
		inv.DueDate,
		inv.Subtotal,
		inv.TaxAmount,
		inv.Total,
		inv.Notes,
		inv.CreatedAt,
		inv.UpdatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// Update applies a partial update to an invoice owned by the user.
func (r *InvoiceRepository) Update(ctx context.Context, userID, id int64, patch invoice.Patch) error {
	u := newUpdate("invoices", patch.UpdatedAt)
	setIfPresent(u, "status", patch.Status)
	setIfPresent(u, "issue_date", patch.IssueDate)
	setIfPresent(u, "due_date", patch.DueDate)
	setIfPresent(u, "subtotal", patch.Subtotal)
	setIfPresent(u, "tax_amount", patch.TaxAmount)
	setIfPresent(u, "total", patch.Total)
	setIfPresent(u, "notes", patch.Notes)

	if err := u.exec(ctx, r.db, "id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

// Delete removes an invoice owned by the user along with its items.
func (r *InvoiceRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "invoices", userID, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// ListItems returns the items of an invoice owned by the user.
func (r *InvoiceRepository) ListItems(ctx context.Context, userID, invoiceID int64) ([]invoice.Item, error) {
	query := `
		SELECT ` + invoiceItemColumns + `
		FROM invoice_items i
		JOIN invoices p ON p.id = i.invoice_id
		WHERE i.invoice_id = ? AND p.user_id = ?
		ORDER BY i.id ASC
	`

	items, err := queryList(ctx, r.db, scanInvoiceItem, query, invoiceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	return items, nil
}

// AddItem inserts item and sets its ID. Callers check invoice ownership.
func (r *InvoiceRepository) AddItem(ctx context.Context, item *invoice.Item) error {
	query := `
		INSERT INTO invoice_items (invoice_id, description, quantity, unit_price, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		item.InvoiceID,
		item.Description,
		item.Quantity,
		item.UnitPrice,
		item.Total,
		item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to add invoice item: %w", err)
	}
	return nil
}

// RemoveItem deletes an item whose invoice belongs to the user.
func (r *InvoiceRepository) RemoveItem(ctx context.Context, userID, itemID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM invoice_items
		WHERE id = ? AND invoice_id IN (SELECT id FROM invoices WHERE user_id = ?)
	`, itemID, userID)
	if err == nil {
		err = requireAffected(result)
	}
	if err != nil {
		return fmt.Errorf("failed to remove invoice item: %w", err)
	}
	return nil
}

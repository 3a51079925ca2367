package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/payment"
)

const paymentColumns = `id, user_id, invoice_id, amount, payment_method, status, transaction_id, notes,
	payment_date, created_at, updated_at`

// PaymentRepository implements payment.Repository.
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.InvoiceID,
		&p.Amount,
		&p.PaymentMethod,
		&p.Status,
		&p.TransactionID,
		&p.Notes,
		&p.PaymentDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all of the user's payments.
func (r *PaymentRepository) List(ctx context.Context, userID int64) ([]payment.Payment, error) {
	payments, err := queryList(ctx, r.db, scanPayment,
		"SELECT "+paymentColumns+" FROM payments WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListByInvoice returns the user's payments recorded against one invoice.
func (r *PaymentRepository) ListByInvoice(ctx context.Context, userID, invoiceID int64) ([]payment.Payment, error) {
	payments, err := queryList(ctx, r.db, scanPayment,
		"SELECT "+paymentColumns+" FROM payments WHERE user_id = ? AND invoice_id = ? ORDER BY id ASC",
		userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice payments: %w", err)
	}
	return payments, nil
}

// Create inserts p and sets its ID.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := requireOwned(ctx, r.db, "invoices", p.UserID, p.InvoiceID); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	query := `
		INSERT INTO payments (user_id, invoice_id, amount, payment_method, status, transaction_id, notes,
			payment_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		p.UserID,
		p.InvoiceID,
		p.Amount,
		p.PaymentMethod,
		p.Status,
		p.TransactionID,
		p.Notes,
		p.PaymentDate,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Delete removes a payment owned by the user.
func (r *PaymentRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "payments", userID, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

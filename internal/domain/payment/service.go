package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// Service handles payment operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new payment service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines payment inputs.
type CreateRequest struct {
	InvoiceID     int64   `json:"invoiceId"`
	Amount        string  `json:"amount"`
	PaymentMethod Method  `json:"paymentMethod"`
	Status        *Status `json:"status,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PaymentDate   *string `json:"paymentDate,omitempty"`
}

// List returns all payments owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Payment, error) {
	payments, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	return payments, nil
}

// ByInvoice returns the user's payments recorded against an invoice.
func (s *Service) ByInvoice(ctx context.Context, userID, invoiceID int64) ([]Payment, error) {
	payments, err := s.repo.ListByInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice payments: %w", err)
	}
	return payments, nil
}

// Create records a payment, pending unless a status is given.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Payment, error) {
	amount, err := input.Decimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	if err := input.OneOf("paymentMethod", &req.PaymentMethod, Methods); err != nil {
		return nil, err
	}
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	paidAt, err := input.OptionalTime("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Payment{
		UserID:        userID,
		InvoiceID:     req.InvoiceID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Status:        StatusPending,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		PaymentDate:   now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if paidAt != nil {
		p.PaymentDate = *paidAt
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}
	s.logger.Info("payment recorded", "user_id", userID, "invoice_id", p.InvoiceID, "amount", p.Amount.String())
	return p, nil
}

// Delete removes a payment owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("deleting payment: %w", err)
	}
	return nil
}

package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/domain/settings"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Service handles invoice operations.
type Service struct {
	repo     Repository
	numberer Numberer
	logger   *slog.Logger
}

// NewService creates a new invoice service.
func NewService(repo Repository, numberer Numberer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, numberer: numberer, logger: logger}
}

// CreateRequest defines invoice creation inputs. Amounts default to zero.
type CreateRequest struct {
	ClientID  int64   `json:"clientId"`
	ProjectID *int64  `json:"projectId,omitempty"`
	Status    *Status `json:"status,omitempty"`
	IssueDate *string `json:"issueDate,omitempty"`
	DueDate   *string `json:"dueDate,omitempty"`
	Subtotal  *string `json:"subtotal,omitempty"`
	TaxAmount *string `json:"taxAmount,omitempty"`
	Total     *string `json:"total,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// UpdateRequest is a partial invoice update.
type UpdateRequest struct {
	ID        int64   `json:"id"`
	Status    *Status `json:"status,omitempty"`
	IssueDate *string `json:"issueDate,omitempty"`
	DueDate   *string `json:"dueDate,omitempty"`
	Subtotal  *string `json:"subtotal,omitempty"`
	TaxAmount *string `json:"taxAmount,omitempty"`
	Total     *string `json:"total,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// AddItemRequest defines a new line item. Quantity defaults to 1.
type AddItemRequest struct {
	InvoiceID   int64   `json:"invoiceId"`
	Description string  `json:"description"`
	Quantity    *string `json:"quantity,omitempty"`
	UnitPrice   string  `json:"unitPrice"`
}

// List returns all invoices owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Invoice, error) {
	invoices, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return invoices, nil
}

// Get fetches an invoice by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	return inv, nil
}

// Create reserves the next invoice number and stores a new invoice.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Invoice, error) {
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	issue, err := input.OptionalTime("issueDate", req.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := input.OptionalTime("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}
	subtotal, err := input.DecimalOr("subtotal", req.Subtotal, decimal.Zero)
	if err != nil {
		return nil, err
	}
	tax, err := input.DecimalOr("taxAmount", req.TaxAmount, decimal.Zero)
	if err != nil {
		return nil, err
	}
	total, err := input.DecimalOr("total", req.Total, decimal.Zero)
	if err != nil {
		return nil, err
	}

	number, err := s.numberer.NextNumber(ctx, userID, settings.SequenceInvoice)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	now := time.Now().UTC()
	inv := &Invoice{
		UserID:        userID,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		InvoiceNumber: number,
		Status:        StatusDraft,
		IssueDate:     now,
		DueDate:       due,
		Subtotal:      subtotal,
		TaxAmount:     tax,
		Total:         total,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.Status != nil {
		inv.Status = *req.Status
	}
	if issue != nil {
		inv.IssueDate = *issue
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}
	s.logger.Info("invoice created", "user_id", userID, "invoice_id", inv.ID, "number", inv.InvoiceNumber)
	return inv, nil
}

// Update applies a partial update and returns the reloaded invoice.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Invoice, error) {
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	patch := Patch{Status: req.Status, Notes: req.Notes, UpdatedAt: time.Now().UTC()}
	var err error
	if patch.IssueDate, err = input.OptionalTime("issueDate", req.IssueDate); err != nil {
		return nil, err
	}
	if patch.DueDate, err = input.OptionalTime("dueDate", req.DueDate); err != nil {
		return nil, err
	}
	if patch.Subtotal, err = input.OptionalDecimal("subtotal", req.Subtotal); err != nil {
		return nil, err
	}
	if patch.TaxAmount, err = input.OptionalDecimal("taxAmount", req.TaxAmount); err != nil {
		return nil, err
	}
	if patch.Total, err = input.OptionalDecimal("total", req.Total); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("updating invoice: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes an invoice and its line items.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvoiceNotFound
		}
		return fmt.Errorf("deleting invoice: %w", err)
	}
	return nil
}

// Items lists the line items of an owned invoice.
func (s *Service) Items(ctx context.Context, userID, invoiceID int64) ([]Item, error) {
	if _, err := s.Get(ctx, userID, invoiceID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice items: %w", err)
	}
	return items, nil
}

// AddItem appends a line item to an owned invoice. The invoice totals are
// not recomputed.
func (s *Service) AddItem(ctx context.Context, userID int64, req AddItemRequest) (*Item, error) {
	if err := input.Required("description", req.Description); err != nil {
		return nil, err
	}
	qty, err := input.DecimalOr("quantity", req.Quantity, decimal.NewFromInt(1))
	if err != nil {
		return nil, err
	}
	price, err := input.Decimal("unitPrice", req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, userID, req.InvoiceID); err != nil {
		return nil, err
	}

	item := &Item{
		InvoiceID:   req.InvoiceID,
		Description: req.Description,
		Quantity:    qty,
		UnitPrice:   price,
		Total:       qty.Mul(price),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("adding invoice item: %w", err)
	}
	return item, nil
}

// RemoveItem deletes a line item from an owned invoice.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) error {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("removing invoice item: %w", err)
	}
	return nil
}

package bid

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

// Service handles bid operations.
type Service struct {
	repo     Repository
	numberer Numberer
	logger   *slog.Logger
}

// NewService creates a new bid service.
func NewService(repo Repository, numberer Numberer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, numberer: numberer, logger: logger}
}

// CreateRequest defines bid creation inputs.
type CreateRequest struct {
	ClientID   int64   `json:"clientId"`
	ProjectID  *int64  `json:"projectId,omitempty"`
	Status     *Status `json:"status,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	Subtotal   *string `json:"subtotal,omitempty"`
	TaxAmount  *string `json:"taxAmount,omitempty"`
	Total      *string `json:"total,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// UpdateRequest is a partial bid update.
type UpdateRequest struct {
	ID         int64   `json:"id"`
	Status     *Status `json:"status,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	Subtotal   *string `json:"subtotal,omitempty"`
	TaxAmount  *string `json:"taxAmount,omitempty"`
	Total      *string `json:"total,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// AddItemRequest defines a new line item. Quantity defaults to 1.
type AddItemRequest struct {
	BidID       int64   `json:"bidId"`
	Description string  `json:"description"`
	Quantity    *string `json:"quantity,omitempty"`
	UnitPrice   string  `json:"unitPrice"`
}

// List returns all bids owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Bid, error) {
	bids, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	return bids, nil
}

// Get fetches a bid by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Bid, error) {
	b, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("getting bid: %w", err)
	}
	return b, nil
}

// Create reserves the next bid number and stores a new bid.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Bid, error) {
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	expiry, err := input.OptionalTime("expiryDate", req.ExpiryDate)
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

	number, err := s.numberer.NextNumber(ctx, userID, settings.SequenceBid)
	if err != nil {
		return nil, fmt.Errorf("creating bid: %w", err)
	}

	now := time.Now().UTC()
	b := &Bid{
		UserID:     userID,
		ClientID:   req.ClientID,
		ProjectID:  req.ProjectID,
		BidNumber:  number,
		Status:     StatusDraft,
		IssueDate:  now,
		ExpiryDate: expiry,
		Subtotal:   subtotal,
		TaxAmount:  tax,
		Total:      total,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Status != nil {
		b.Status = *req.Status
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("creating bid: %w", err)
	}
	s.logger.Info("bid created", "user_id", userID, "bid_id", b.ID, "number", b.BidNumber)
	return b, nil
}

// Update applies a partial update and returns the reloaded bid.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Bid, error) {
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	patch := Patch{Status: req.Status, Notes: req.Notes, UpdatedAt: time.Now().UTC()}
	var err error
	if patch.ExpiryDate, err = input.OptionalTime("expiryDate", req.ExpiryDate); err != nil {
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
			return nil, ErrBidNotFound
		}
		return nil, fmt.Errorf("updating bid: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a bid and its line items.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBidNotFound
		}
		return fmt.Errorf("deleting bid: %w", err)
	}
	return nil
}

// Items lists the line items of an owned bid.
func (s *Service) Items(ctx context.Context, userID, bidID int64) ([]Item, error) {
	if _, err := s.Get(ctx, userID, bidID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, userID, bidID)
	if err != nil {
		return nil, fmt.Errorf("listing bid items: %w", err)
	}
	return items, nil
}

// AddItem appends a line item to an owned bid.
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
	if _, err := s.Get(ctx, userID, req.BidID); err != nil {
		return nil, err
	}

	item := &Item{
		BidID:       req.BidID,
		Description: req.Description,
		Quantity:    qty,
		UnitPrice:   price,
		Total:       qty.Mul(price),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("adding bid item: %w", err)
	}
	return item, nil
}

// RemoveItem deletes a line item from an owned bid.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) error {
	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("removing bid item: %w", err)
	}
	return nil
}

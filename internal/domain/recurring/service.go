package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Service handles recurring invoice schedules.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new recurring invoice service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines schedule inputs. NextInvoiceDate defaults to StartDate.
type CreateRequest struct {
	ClientID        int64     `json:"clientId"`
	ProjectID       *int64    `json:"projectId,omitempty"`
	Name            string    `json:"name"`
	Frequency       Frequency `json:"frequency"`
	Status          *Status   `json:"status,omitempty"`
	StartDate       string    `json:"startDate"`
	EndDate         *string   `json:"endDate,omitempty"`
	Subtotal        *string   `json:"subtotal,omitempty"`
	TaxAmount       *string   `json:"taxAmount,omitempty"`
	Total           *string   `json:"total,omitempty"`
	NextInvoiceDate *string   `json:"nextInvoiceDate,omitempty"`
}

// UpdateRequest is a partial schedule update.
type UpdateRequest struct {
	ID              int64      `json:"id"`
	Name            *string    `json:"name,omitempty"`
	Frequency       *Frequency `json:"frequency,omitempty"`
	Status          *Status    `json:"status,omitempty"`
	EndDate         *string    `json:"endDate,omitempty"`
	Subtotal        *string    `json:"subtotal,omitempty"`
	TaxAmount       *string    `json:"taxAmount,omitempty"`
	Total           *string    `json:"total,omitempty"`
	NextInvoiceDate *string    `json:"nextInvoiceDate,omitempty"`
}

// List returns all schedules owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Invoice, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing recurring invoices: %w", err)
	}
	return list, nil
}

// Get fetches a schedule by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Invoice, error) {
	inv, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecurringNotFound
		}
		return nil, fmt.Errorf("getting recurring invoice: %w", err)
	}
	return inv, nil
}

// Create stores a new schedule, active unless a status is given.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Invoice, error) {
	if err := input.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("frequency", &req.Frequency, Frequencies); err != nil {
		return nil, err
	}
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	start, err := input.Time("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := input.OptionalTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	next, err := input.OptionalTime("nextInvoiceDate", req.NextInvoiceDate)
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
	if next == nil {
		next = &start
	}

	now := time.Now().UTC()
	inv := &Invoice{
		UserID:          userID,
		ClientID:        req.ClientID,
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		Frequency:       req.Frequency,
		Status:          StatusActive,
		StartDate:       start,
		EndDate:         end,
		Subtotal:        subtotal,
		TaxAmount:       tax,
		Total:           total,
		NextInvoiceDate: next,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Status != nil {
		inv.Status = *req.Status
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("creating recurring invoice: %w", err)
	}
	return inv, nil
}

// Update applies a partial update and returns the reloaded schedule.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Invoice, error) {
	if err := input.RequiredIfSet("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("frequency", req.Frequency, Frequencies); err != nil {
		return nil, err
	}
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	patch := Patch{Name: req.Name, Frequency: req.Frequency, Status: req.Status, UpdatedAt: time.Now().UTC()}
	var err error
	if patch.EndDate, err = input.OptionalTime("endDate", req.EndDate); err != nil {
		return nil, err
	}
	if patch.NextInvoiceDate, err = input.OptionalTime("nextInvoiceDate", req.NextInvoiceDate); err != nil {
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
			return nil, ErrRecurringNotFound
		}
		return nil, fmt.Errorf("updating recurring invoice: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a schedule owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecurringNotFound
		}
		return fmt.Errorf("deleting recurring invoice: %w", err)
	}
	return nil
}

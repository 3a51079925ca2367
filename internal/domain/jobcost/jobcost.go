// Package jobcost tracks expenses incurred on projects.
package jobcost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/shopspring/decimal"
)

// ErrJobCostNotFound indicates the cost doesn't exist or belongs to another user.
var ErrJobCostNotFound = apperr.New(apperr.CodeNotFound, "job cost not found")

// Category groups expenses for reporting.
type Category string

const (
	CategoryMaterials      Category = "Materials"
	CategoryLabor          Category = "Labor"
	CategoryEquipment      Category = "Equipment"
	CategoryTransportation Category = "Transportation"
	CategoryPermits        Category = "Permits"
	CategorySubcontractors Category = "Subcontractors"
	CategoryTools          Category = "Tools"
	CategoryOther          Category = "Other"
)

// Categories lists every valid expense category.
var Categories = []Category{
	CategoryMaterials, CategoryLabor, CategoryEquipment, CategoryTransportation,
	CategoryPermits, CategorySubcontractors, CategoryTools, CategoryOther,
}

// JobCost is an expense booked against a project.
type JobCost struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	ProjectID   int64           `json:"projectId"`
	Category    Category        `json:"category"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CostDate    time.Time       `json:"costDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Category    *Category
	Description *string
	Amount      *decimal.Decimal
	CostDate    *time.Time
	UpdatedAt   time.Time
}

// Repository provides persistence for job costs.
type Repository interface {
	List(ctx context.Context, userID int64) ([]JobCost, error)
	ListByProject(ctx context.Context, userID, projectID int64) ([]JobCost, error)
	Get(ctx context.Context, userID, id int64) (*JobCost, error)
	Create(ctx context.Context, c *JobCost) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles job cost operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new job cost service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines expense inputs. CostDate defaults to now.
type CreateRequest struct {
	ProjectID   int64    `json:"projectId"`
	Category    Category `json:"category"`
	Description *string  `json:"description,omitempty"`
	Amount      string   `json:"amount"`
	CostDate    *string  `json:"costDate,omitempty"`
}

// UpdateRequest is a partial expense update.
type UpdateRequest struct {
	ID          int64     `json:"id"`
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Amount      *string   `json:"amount,omitempty"`
	CostDate    *string   `json:"costDate,omitempty"`
}

// List returns all job costs owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]JobCost, error) {
	costs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing job costs: %w", err)
	}
	return costs, nil
}

// ByProject returns the user's job costs for a project.
func (s *Service) ByProject(ctx context.Context, userID, projectID int64) ([]JobCost, error) {
	costs, err := s.repo.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project job costs: %w", err)
	}
	return costs, nil
}

// Get fetches a job cost by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*JobCost, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobCostNotFound
		}
		return nil, fmt.Errorf("getting job cost: %w", err)
	}
	return c, nil
}

// Create books a new expense.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*JobCost, error) {
	if err := input.OneOf("category", &req.Category, Categories); err != nil {
		return nil, err
	}
	amount, err := input.Decimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	costDate, err := input.OptionalTime("costDate", req.CostDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &JobCost{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
		CostDate:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if costDate != nil {
		c.CostDate = *costDate
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating job cost: %w", err)
	}
	return c, nil
}

// Update applies a partial update and returns the reloaded expense.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*JobCost, error) {
	if err := input.OneOf("category", req.Category, Categories); err != nil {
		return nil, err
	}
	amount, err := input.OptionalDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	costDate, err := input.OptionalTime("costDate", req.CostDate)
	if err != nil {
		return nil, err
	}

	patch := Patch{
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
		CostDate:    costDate,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJobCostNotFound
		}
		return nil, fmt.Errorf("updating job cost: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes an expense owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJobCostNotFound
		}
		return fmt.Errorf("deleting job cost: %w", err)
	}
	return nil
}

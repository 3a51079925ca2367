package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ClientID    int64   `json:"clientId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Budget      *string `json:"budget,omitempty"`
}

// UpdateRequest is a partial project update.
type UpdateRequest struct {
	ID          int64   `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Budget      *string `json:"budget,omitempty"`
	Progress    *int64  `json:"progress,omitempty"`
}

// List returns all projects owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Project, error) {
	projects, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Project, error) {
	proj, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// Create creates a new project in the planning stage unless a status is given.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Project, error) {
	if err := input.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	start, err := input.OptionalTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := input.OptionalTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	budget, err := input.NullDecimal("budget", req.Budget)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	proj := &Project{
		UserID:      userID,
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      StatusPlanning,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != nil {
		proj.Status = *req.Status
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	s.logger.Debug("project created", "user_id", userID, "project_id", proj.ID)
	return proj, nil
}

// Update applies a partial update and returns the reloaded project.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Project, error) {
	if err := input.RequiredIfSet("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("status", req.Status, Statuses); err != nil {
		return nil, err
	}
	start, err := input.OptionalTime("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := input.OptionalTime("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	budget, err := input.OptionalDecimal("budget", req.Budget)
	if err != nil {
		return nil, err
	}

	patch := Patch{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		Progress:    req.Progress,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a project owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// Service handles client operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new client service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines client creation inputs.
type CreateRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Country *string `json:"country,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// UpdateRequest is a partial client update.
type UpdateRequest struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Country *string `json:"country,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// List returns all clients owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Client, error) {
	clients, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

// Get fetches a client by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Client, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// Create creates a new client.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Client, error) {
	if err := input.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.Email("email", req.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &Client{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	s.logger.Debug("client created", "user_id", userID, "client_id", c.ID)
	return c, nil
}

// Update applies a partial update and returns the reloaded client.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Client, error) {
	if err := input.RequiredIfSet("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.Email("email", req.Email); err != nil {
		return nil, err
	}

	patch := Patch{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("updating client: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a client owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

// Package doctemplate stores reusable invoice, bid and proposal text.
package doctemplate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// ErrTemplateNotFound indicates the template doesn't exist or belongs to another user.
var ErrTemplateNotFound = apperr.New(apperr.CodeNotFound, "template not found")

// Type is the kind of document a template produces.
type Type string

const (
	TypeInvoice  Type = "invoice"
	TypeBid      Type = "bid"
	TypeProposal Type = "proposal"
)

// Types lists every valid template type.
var Types = []Type{TypeInvoice, TypeBid, TypeProposal}

// Template is named document content.
type Template struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Type      Type      `json:"type"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Name      *string
	Type      *Type
	Content   *string
	UpdatedAt time.Time
}

// Repository provides persistence for templates.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Template, error)
	Get(ctx context.Context, userID, id int64) (*Template, error)
	Create(ctx context.Context, t *Template) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles template operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new template service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines template inputs.
type CreateRequest struct {
	Name    string  `json:"name"`
	Type    Type    `json:"type"`
	Content *string `json:"content,omitempty"`
}

// UpdateRequest is a partial template update.
type UpdateRequest struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name,omitempty"`
	Type    *Type   `json:"type,omitempty"`
	Content *string `json:"content,omitempty"`
}

// List returns all templates owned by the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Template, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return list, nil
}

// Get fetches a template by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Template, error) {
	t, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("getting template: %w", err)
	}
	return t, nil
}

// Create stores a new template.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Template, error) {
	if err := input.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("type", &req.Type, Types); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t := &Template{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}
	return t, nil
}

// Update applies a partial update and returns the reloaded template.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Template, error) {
	if err := input.RequiredIfSet("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.OneOf("type", req.Type, Types); err != nil {
		return nil, err
	}

	patch := Patch{Name: req.Name, Type: req.Type, Content: req.Content, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("updating template: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a template owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTemplateNotFound
		}
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

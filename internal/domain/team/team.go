// Package team manages the people who work on a user's projects.
package team

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

// ErrMemberNotFound indicates the member doesn't exist or belongs to another user.
var ErrMemberNotFound = apperr.New(apperr.CodeNotFound, "team member not found")

// Role is a member's position on the crew.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
)

// Roles lists every valid member role.
var Roles = []Role{RoleAdmin, RoleManager, RoleWorker}

// Member is a person on the user's team.
type Member struct {
	ID         int64               `json:"id"`
	UserID     int64               `json:"userId"`
	Name       string              `json:"name"`
	Email      *string             `json:"email"`
	Phone      *string             `json:"phone"`
	Role       *Role               `json:"role"`
	HourlyRate decimal.NullDecimal `json:"hourlyRate"`
	Bio        *string             `json:"bio"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// Patch lists the columns an update writes; nil fields are untouched.
type Patch struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *Role
	HourlyRate *decimal.Decimal
	Bio        *string
	UpdatedAt  time.Time
}

// Repository provides persistence for team members.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Member, error)
	Get(ctx context.Context, userID, id int64) (*Member, error)
	Create(ctx context.Context, m *Member) error
	Update(ctx context.Context, userID, id int64, patch Patch) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles team member operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new team service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines member inputs.
type CreateRequest struct {
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	HourlyRate *string `json:"hourlyRate,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// UpdateRequest is a partial member update.
type UpdateRequest struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	HourlyRate *string `json:"hourlyRate,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// List returns all team members of the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Member, error) {
	members, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}
	return members, nil
}

// Get fetches a team member by ID.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Member, error) {
	m, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting team member: %w", err)
	}
	return m, nil
}

// Create adds a member to the team.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Member, error) {
	if err := input.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := input.OneOf("role", req.Role, Roles); err != nil {
		return nil, err
	}
	rate, err := input.NullDecimal("hourlyRate", req.HourlyRate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &Member{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		HourlyRate: rate,
		Bio:        req.Bio,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("creating team member: %w", err)
	}
	return m, nil
}

// Update applies a partial update and returns the reloaded member.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*Member, error) {
	if err := input.RequiredIfSet("name", req.Name); err != nil {
		return nil, err
	}
	if err := input.Email("email", req.Email); err != nil {
		return nil, err
	}
	if err := input.OneOf("role", req.Role, Roles); err != nil {
		return nil, err
	}
	rate, err := input.OptionalDecimal("hourlyRate", req.HourlyRate)
	if err != nil {
		return nil, err
	}

	patch := Patch{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		HourlyRate: rate,
		Bio:        req.Bio,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, userID, req.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("updating team member: %w", err)
	}
	return s.Get(ctx, userID, req.ID)
}

// Delete removes a member from the team.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("deleting team member: %w", err)
	}
	return nil
}

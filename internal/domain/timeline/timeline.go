// Package timeline records dated events on a project's history.
package timeline

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

// ErrEventNotFound indicates the event doesn't exist or belongs to another user.
var ErrEventNotFound = apperr.New(apperr.CodeNotFound, "timeline event not found")

// Event is a single entry in a project timeline.
type Event struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	ProjectID   int64     `json:"projectId"`
	EventType   string    `json:"eventType"`
	Description *string   `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository provides persistence for timeline events.
type Repository interface {
	ListByProject(ctx context.Context, userID, projectID int64) ([]Event, error)
	Create(ctx context.Context, e *Event) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles timeline operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new timeline service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines event inputs. EventDate defaults to now.
type CreateRequest struct {
	ProjectID   int64   `json:"projectId"`
	EventType   string  `json:"eventType"`
	Description *string `json:"description,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
}

// ByProject returns the user's events for a project.
func (s *Service) ByProject(ctx context.Context, userID, projectID int64) ([]Event, error) {
	events, err := s.repo.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing timeline: %w", err)
	}
	return events, nil
}

// Create records a timeline event.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Event, error) {
	if err := input.Required("eventType", req.EventType); err != nil {
		return nil, err
	}
	when, err := input.OptionalTime("eventDate", req.EventDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &Event{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		EventType:   req.EventType,
		Description: req.Description,
		EventDate:   now,
		CreatedAt:   now,
	}
	if when != nil {
		e.EventDate = *when
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("creating timeline event: %w", err)
	}
	return e, nil
}

// Delete removes an event owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("deleting timeline event: %w", err)
	}
	return nil
}

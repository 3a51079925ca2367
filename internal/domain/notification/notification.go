// Package notification stores in-app notices. Nothing delivers them.
package notification

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

// ErrNotificationNotFound indicates the notification doesn't exist or belongs to another user.
var ErrNotificationNotFound = apperr.New(apperr.CodeNotFound, "notification not found")

// Notification is a message shown to the user.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Type      *string   `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository provides persistence for notifications.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Notification, error)
	Create(ctx context.Context, n *Notification) error
	MarkRead(ctx context.Context, userID, id int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles notification operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines notification inputs.
type CreateRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// List returns all notifications of the user.
func (s *Service) List(ctx context.Context, userID int64) ([]Notification, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return list, nil
}

// Create stores an unread notification.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Notification, error) {
	if err := input.Required("title", req.Title); err != nil {
		return nil, err
	}
	n := &Notification{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}
	return n, nil
}

// MarkAsRead flags one notification as read.
func (s *Service) MarkAsRead(ctx context.Context, userID, id int64) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

// MarkAllAsRead flags every unread notification as read and reports how
// many changed.
func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("marking notifications read: %w", err)
	}
	return n, nil
}

// Delete removes a notification owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("deleting notification: %w", err)
	}
	return nil
}

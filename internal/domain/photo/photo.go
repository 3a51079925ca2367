// Package photo stores references to site photos attached to projects.
package photo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// ErrPhotoNotFound indicates the photo doesn't exist or belongs to another user.
var ErrPhotoNotFound = apperr.New(apperr.CodeNotFound, "photo not found")

// Photo is an uploaded image URL for a project.
type Photo struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	ProjectID  int64     `json:"projectId"`
	URL        string    `json:"url"`
	Caption    *string   `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository provides persistence for photos.
type Repository interface {
	ListByProject(ctx context.Context, userID, projectID int64) ([]Photo, error)
	Create(ctx context.Context, p *Photo) error
	Delete(ctx context.Context, userID, id int64) error
}

// Service handles photo operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new photo service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines photo inputs.
type CreateRequest struct {
	ProjectID int64   `json:"projectId"`
	URL       string  `json:"url"`
	Caption   *string `json:"caption,omitempty"`
}

// ByProject returns the user's photos for a project.
func (s *Service) ByProject(ctx context.Context, userID, projectID int64) ([]Photo, error) {
	photos, err := s.repo.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	return photos, nil
}

// Create stores a photo reference.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*Photo, error) {
	if err := input.Required("url", req.URL); err != nil {
		return nil, err
	}
	if _, err := url.Parse(req.URL); err != nil {
		return nil, apperr.Invalid("url", err.Error())
	}

	now := time.Now().UTC()
	p := &Photo{
		UserID:     userID,
		ProjectID:  req.ProjectID,
		URL:        req.URL,
		Caption:    req.Caption,
		UploadedAt: now,
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating photo: %w", err)
	}
	return p, nil
}

// Delete removes a photo owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("deleting photo: %w", err)
	}
	return nil
}

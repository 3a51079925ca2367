package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
)

// Service handles user identity operations.
type Service struct {
	repo        Repository
	ownerOpenID string
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new user service. ownerOpenID names the identity
// that is granted the admin role by default.
func NewService(repo Repository, ownerOpenID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, ownerOpenID: ownerOpenID, logger: logger, now: time.Now}
}

// UpsertRequest describes a sign-in. A nil field means "not provided";
// a non-nil empty string is written as given.
type UpsertRequest struct {
	OpenID       string     `json:"openId"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	LoginMethod  *string    `json:"loginMethod,omitempty"`
	Role         *Role      `json:"role,omitempty"`
	LastSignedIn *time.Time `json:"lastSignedIn,omitempty"`
}

// Upsert inserts the user or refreshes the existing row for the same
// identity. lastSignedIn is always written.
func (s *Service) Upsert(ctx context.Context, req UpsertRequest) (*User, error) {
	if strings.TrimSpace(req.OpenID) == "" {
		return nil, ErrOpenIDRequired
	}
	if err := input.OneOf("role", req.Role, Roles); err != nil {
		return nil, err
	}

	u := Upsert{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
		Role:        RoleUser,
		SignedInAt:  s.now().UTC(),
	}
	if req.LastSignedIn != nil {
		u.SignedInAt = req.LastSignedIn.UTC()
	}
	switch {
	case req.Role != nil:
		u.Role = *req.Role
		u.OverwriteRole = true
	case s.ownerOpenID != "" && req.OpenID == s.ownerOpenID:
		u.Role = RoleAdmin
		u.OverwriteRole = true
	}

	saved, err := s.repo.Upsert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("upserting user: %w", err)
	}
	s.logger.Debug("user signed in", "user_id", saved.ID, "role", saved.Role)
	return saved, nil
}

// GetByOpenID resolves a user by external identity.
func (s *Service) GetByOpenID(ctx context.Context, openID string) (*User, error) {
	u, err := s.repo.GetByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// Get resolves a user by id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

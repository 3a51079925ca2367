package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Service handles time tracking operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new time entry service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines time entry inputs.
type CreateRequest struct {
	ProjectID   int64   `json:"projectId"`
	Description *string `json:"description,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     *string `json:"endTime,omitempty"`
	HourlyRate  *string `json:"hourlyRate,omitempty"`
}

// ByProject returns the user's entries for a project.
func (s *Service) ByProject(ctx context.Context, userID, projectID int64) ([]TimeEntry, error) {
	entries, err := s.repo.ListByProject(ctx, userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	return entries, nil
}

// Create logs a time entry, deriving its duration and cost.
func (s *Service) Create(ctx context.Context, userID int64, req CreateRequest) (*TimeEntry, error) {
	start, err := input.Time("startTime", req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := input.OptionalTime("endTime", req.EndTime)
	if err != nil {
		return nil, err
	}
	if end != nil && end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	rate, err := input.NullDecimal("hourlyRate", req.HourlyRate)
	if err != nil {
		return nil, err
	}

	duration := Minutes(start, end)
	now := time.Now().UTC()
	e := &TimeEntry{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Description: req.Description,
		StartTime:   start,
		EndTime:     end,
		Duration:    duration,
		HourlyRate:  rate,
		TotalCost:   Cost(rate, duration),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}
	return e, nil
}

// Delete removes a time entry owned by the user.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTimeEntryNotFound
		}
		return fmt.Errorf("deleting time entry: %w", err)
	}
	return nil
}

// Minutes returns the elapsed whole minutes between start and end, rounding
// half minutes up. An open entry has no duration.
func Minutes(start time.Time, end *time.Time) int64 {
	if end == nil {
		return 0
	}
	return int64(math.Floor(end.Sub(start).Minutes() + 0.5))
}

// Cost is rate times duration in hours, rounded to cents. Entries without a
// rate or duration cost nothing.
func Cost(rate decimal.NullDecimal, minutes int64) decimal.Decimal {
	if !rate.Valid || minutes == 0 {
		return decimal.Zero
	}
	return rate.Decimal.Mul(decimal.NewFromInt(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}

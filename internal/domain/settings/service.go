package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/tradeledger/internal/domain/input"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Service handles business settings and document numbering.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new settings service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// UpdateRequest is a partial settings update.
type UpdateRequest struct {
	CompanyName    *string `json:"companyName,omitempty"`
	CompanyEmail   *string `json:"companyEmail,omitempty"`
	CompanyPhone   *string `json:"companyPhone,omitempty"`
	CompanyAddress *string `json:"companyAddress,omitempty"`
	TaxRate        *string `json:"taxRate,omitempty"`
	PaymentTerms   *string `json:"paymentTerms,omitempty"`
	InvoicePrefix  *string `json:"invoicePrefix,omitempty"`
	BidPrefix      *string `json:"bidPrefix,omitempty"`
}

// Get returns the user's settings, creating the default row on first access.
func (s *Service) Get(ctx context.Context, userID int64) (*BusinessSettings, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}
	bs, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("getting business settings: %w", err)
	}
	return bs, nil
}

// Update applies a partial update and returns the reloaded settings.
func (s *Service) Update(ctx context.Context, userID int64, req UpdateRequest) (*BusinessSettings, error) {
	if err := input.RequiredIfSet("companyName", req.CompanyName); err != nil {
		return nil, err
	}
	if err := input.Email("companyEmail", req.CompanyEmail); err != nil {
		return nil, err
	}
	if err := input.RequiredIfSet("invoicePrefix", req.InvoicePrefix); err != nil {
		return nil, err
	}
	if err := input.RequiredIfSet("bidPrefix", req.BidPrefix); err != nil {
		return nil, err
	}
	taxRate, err := input.OptionalDecimal("taxRate", req.TaxRate)
	if err != nil {
		return nil, err
	}

	if err := s.ensure(ctx, userID); err != nil {
		return nil, err
	}
	patch := Patch{
		CompanyName:    req.CompanyName,
		CompanyEmail:   req.CompanyEmail,
		CompanyPhone:   req.CompanyPhone,
		CompanyAddress: req.CompanyAddress,
		TaxRate:        taxRate,
		PaymentTerms:   req.PaymentTerms,
		InvoicePrefix:  req.InvoicePrefix,
		BidPrefix:      req.BidPrefix,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, userID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("updating business settings: %w", err)
	}
	return s.Get(ctx, userID)
}

// NextNumber reserves the next document number for seq, formatted as
// "<prefix>-<n>". Each call consumes one counter value.
func (s *Service) NextNumber(ctx context.Context, userID int64, seq Sequence) (string, error) {
	if err := s.ensure(ctx, userID); err != nil {
		return "", err
	}
	prefix, n, err := s.repo.Advance(ctx, userID, seq)
	if err != nil {
		return "", fmt.Errorf("advancing %s number: %w", seq, err)
	}
	return fmt.Sprintf("%s-%d", prefix, n), nil
}

func (s *Service) ensure(ctx context.Context, userID int64) error {
	now := time.Now().UTC()
	err := s.repo.CreateIfMissing(ctx, &BusinessSettings{
		UserID:            userID,
		CompanyName:       DefaultCompanyName,
		TaxRate:           decimal.Zero,
		InvoicePrefix:     DefaultInvoicePrefix,
		BidPrefix:         DefaultBidPrefix,
		NextInvoiceNumber: DefaultFirstNumber,
		NextBidNumber:     DefaultFirstNumber,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return fmt.Errorf("ensuring business settings: %w", err)
	}
	return nil
}

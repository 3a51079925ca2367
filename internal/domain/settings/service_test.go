package settings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/domain/settings"
	"github.com/rpggio/tradeledger/internal/repository/mocks"
)

func TestSettingsService_GetCreatesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}

	repo.On("CreateIfMissing", ctx, mock.MatchedBy(func(bs *settings.BusinessSettings) bool {
		return bs.UserID == 7 &&
			bs.CompanyName == "My Company" &&
			bs.InvoicePrefix == "INV" &&
			bs.BidPrefix == "BID" &&
			bs.NextInvoiceNumber == 1001 &&
			bs.NextBidNumber == 1001 &&
			bs.TaxRate.IsZero()
	})).Return(nil)
	repo.On("Get", ctx, int64(7)).Return(&settings.BusinessSettings{UserID: 7, CompanyName: "My Company"}, nil)

	svc := settings.NewService(repo, nil)
	bs, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "My Company", bs.CompanyName)
	repo.AssertExpectations(t)
}

func TestSettingsService_NextNumber(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}

	repo.On("CreateIfMissing", ctx, mock.Anything).Return(nil)
	repo.On("Advance", ctx, int64(1), settings.SequenceInvoice).Return("INV", int64(1001), nil).Once()
	repo.On("Advance", ctx, int64(1), settings.SequenceInvoice).Return("INV", int64(1002), nil).Once()

	svc := settings.NewService(repo, nil)

	first, err := svc.NextNumber(ctx, 1, settings.SequenceInvoice)
	require.NoError(t, err)
	require.Equal(t, "INV-1001", first)

	second, err := svc.NextNumber(ctx, 1, settings.SequenceInvoice)
	require.NoError(t, err)
	require.Equal(t, "INV-1002", second)
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	svc := settings.NewService(repo, nil)

	blank := ""
	_, err := svc.Update(ctx, 1, settings.UpdateRequest{InvoicePrefix: &blank})
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	rate := "eight"
	_, err = svc.Update(ctx, 1, settings.UpdateRequest{TaxRate: &rate})
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	email := "not-an-email"
	_, err = svc.Update(ctx, 1, settings.UpdateRequest{CompanyEmail: &email})
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}

	name := "Acme"
	rate := "7.5"
	repo.On("CreateIfMissing", ctx, mock.Anything).Return(nil)
	repo.On("Update", ctx, int64(1), mock.MatchedBy(func(p settings.Patch) bool {
		return p.CompanyName != nil && *p.CompanyName == "Acme" &&
			p.TaxRate != nil && p.TaxRate.String() == "7.5" &&
			p.BidPrefix == nil
	})).Return(nil)
	repo.On("Get", ctx, int64(1)).Return(&settings.BusinessSettings{UserID: 1, CompanyName: "Acme"}, nil)

	svc := settings.NewService(repo, nil)
	bs, err := svc.Update(ctx, 1, settings.UpdateRequest{CompanyName: &name, TaxRate: &rate})
	require.NoError(t, err)
	require.Equal(t, "Acme", bs.CompanyName)
	repo.AssertExpectations(t)
}

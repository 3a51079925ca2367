package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/settings"
	"github.com/rpggio/tradeledger/internal/repository"
)

func defaultSettings(userID int64) *settings.BusinessSettings {
	now := time.Now().UTC()
	return &settings.BusinessSettings{
		UserID:            userID,
		CompanyName:       settings.DefaultCompanyName,
		TaxRate:           decimal.Zero,
		InvoicePrefix:     settings.DefaultInvoicePrefix,
		BidPrefix:         settings.DefaultBidPrefix,
		NextInvoiceNumber: settings.DefaultFirstNumber,
		NextBidNumber:     settings.DefaultFirstNumber,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestSettingsRepository_CreateIfMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.CreateIfMissing(ctx, defaultSettings(1)))

	renamed := defaultSettings(1)
	renamed.CompanyName = "Other"
	require.NoError(t, repo.CreateIfMissing(ctx, renamed))

	bs, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, settings.DefaultCompanyName, bs.CompanyName)
	require.Equal(t, int64(1001), bs.NextInvoiceNumber)
	require.True(t, bs.TaxRate.IsZero())
}

func TestSettingsRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateIfMissing(ctx, defaultSettings(1)))

	rate := decimal.RequireFromString("8.25")
	err := repo.Update(ctx, 1, settings.Patch{
		CompanyName:   strPtr("Acme Builders"),
		TaxRate:       &rate,
		InvoicePrefix: strPtr("AB"),
		UpdatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)

	bs, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Acme Builders", bs.CompanyName)
	require.True(t, rate.Equal(bs.TaxRate))
	require.Equal(t, "AB", bs.InvoicePrefix)
	require.Equal(t, settings.DefaultBidPrefix, bs.BidPrefix)
}

func TestSettingsRepository_Advance(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateIfMissing(ctx, defaultSettings(1)))

	prefix, n, err := repo.Advance(ctx, 1, settings.SequenceInvoice)
	require.NoError(t, err)
	require.Equal(t, "INV", prefix)
	require.Equal(t, int64(1001), n)

	_, n, err = repo.Advance(ctx, 1, settings.SequenceInvoice)
	require.NoError(t, err)
	require.Equal(t, int64(1002), n)

	prefix, n, err = repo.Advance(ctx, 1, settings.SequenceBid)
	require.NoError(t, err)
	require.Equal(t, "BID", prefix)
	require.Equal(t, int64(1001), n)

	bs, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1003), bs.NextInvoiceNumber)
	require.Equal(t, int64(1002), bs.NextBidNumber)
}

func TestSettingsRepository_AdvanceConcurrent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateIfMissing(ctx, defaultSettings(1)))

	const workers = 20
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, n, err := repo.Advance(ctx, 1, settings.SequenceInvoice)
			if err == nil {
				results <- n
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for n := range results {
		require.False(t, seen[n], "number %d issued twice", n)
		seen[n] = true
	}
	require.Len(t, seen, workers)
}

func TestSettingsRepository_AdvanceMissingRow(t *testing.T) {
	db := NewTestDB(t)
	repo := NewSettingsRepository(db)

	_, _, err := repo.Advance(context.Background(), 7, settings.SequenceInvoice)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

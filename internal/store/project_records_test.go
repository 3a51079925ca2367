package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/jobcost"
	"github.com/rpggio/tradeledger/internal/domain/payment"
	"github.com/rpggio/tradeledger/internal/domain/photo"
	"github.com/rpggio/tradeledger/internal/domain/timeentry"
	"github.com/rpggio/tradeledger/internal/domain/timeline"
	"github.com/rpggio/tradeledger/internal/repository"
)

func TestTimeEntryRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTimeEntryRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, 1)
	start := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	e := &timeentry.TimeEntry{
		UserID:     1,
		ProjectID:  proj.ID,
		StartTime:  start,
		EndTime:    &end,
		Duration:   90,
		HourlyRate: decimal.NewNullDecimal(decimal.NewFromInt(60)),
		TotalCost:  decimal.NewFromInt(90),
		CreatedAt:  start,
		UpdatedAt:  start,
	}
	require.NoError(t, repo.Create(ctx, e))

	open := &timeentry.TimeEntry{UserID: 1, ProjectID: proj.ID, StartTime: start, TotalCost: decimal.Zero, CreatedAt: start, UpdatedAt: start}
	require.NoError(t, repo.Create(ctx, open))

	entries, err := repo.ListByProject(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, int64(90), entries[0].Duration)
	require.Equal(t, "90.00", entries[0].TotalCost.StringFixed(2))
	require.True(t, entries[0].HourlyRate.Valid)
	require.Nil(t, entries[1].EndTime)
	require.False(t, entries[1].HourlyRate.Valid)

	other, err := repo.ListByProject(ctx, 2, proj.ID)
	require.NoError(t, err)
	require.Empty(t, other)

	require.NoError(t, repo.Delete(ctx, 1, e.ID))
	require.ErrorIs(t, repo.Delete(ctx, 1, e.ID), repository.ErrNotFound)
}

func TestPaymentRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	first := createTestInvoice(t, db, 1, "INV-1001")
	second := createTestInvoice(t, db, 1, "INV-1002")

	now := time.Now().UTC()
	for _, invoiceID := range []int64{first.ID, first.ID, second.ID} {
		p := &payment.Payment{
			UserID:        1,
			InvoiceID:     invoiceID,
			Amount:        decimal.RequireFromString("250.00"),
			PaymentMethod: payment.MethodCheck,
			Status:        payment.StatusPending,
			PaymentDate:   now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byInvoice, err := repo.ListByInvoice(ctx, 1, first.ID)
	require.NoError(t, err)
	require.Len(t, byInvoice, 2)
	require.Equal(t, payment.MethodCheck, byInvoice[0].PaymentMethod)

	require.ErrorIs(t, repo.Delete(ctx, 2, all[0].ID), repository.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, 1, all[0].ID))
}

func TestJobCostRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewJobCostRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, 1)
	now := time.Now().UTC()
	c := &jobcost.JobCost{
		UserID:    1,
		ProjectID: proj.ID,
		Category:  jobcost.CategoryMaterials,
		Amount:    decimal.RequireFromString("412.99"),
		CostDate:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, c))

	category := jobcost.CategoryPermits
	require.NoError(t, repo.Update(ctx, 1, c.ID, jobcost.Patch{Category: &category, UpdatedAt: now}))

	got, err := repo.Get(ctx, 1, c.ID)
	require.NoError(t, err)
	require.Equal(t, jobcost.CategoryPermits, got.Category)
	require.Equal(t, "412.99", got.Amount.StringFixed(2))

	byProject, err := repo.ListByProject(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	none, err := repo.ListByProject(ctx, 1, proj.ID+1)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPhotoAndTimelineRepositories(t *testing.T) {
	db := NewTestDB(t)
	photos := NewPhotoRepository(db)
	events := NewTimelineRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, 1)
	now := time.Now().UTC()
	p := &photo.Photo{UserID: 1, ProjectID: proj.ID, URL: "https://cdn.example.com/a.jpg", UploadedAt: now, CreatedAt: now}
	require.NoError(t, photos.Create(ctx, p))

	e := &timeline.Event{UserID: 1, ProjectID: proj.ID, EventType: "milestone", Description: strPtr("Framing done"), EventDate: now, CreatedAt: now}
	require.NoError(t, events.Create(ctx, e))

	photoList, err := photos.ListByProject(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Len(t, photoList, 1)
	require.Equal(t, p.URL, photoList[0].URL)

	eventList, err := events.ListByProject(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Len(t, eventList, 1)
	require.Equal(t, "milestone", eventList[0].EventType)

	require.NoError(t, photos.Delete(ctx, 1, p.ID))
	require.NoError(t, events.Delete(ctx, 1, e.ID))
	require.ErrorIs(t, events.Delete(ctx, 1, e.ID), repository.ErrNotFound)
}

func TestProjectRecords_RequireOwnedParent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	theirs := createTestProject(t, db, 2)
	theirInvoice := createTestInvoice(t, db, 2, "INV-1001")
	now := time.Now().UTC()

	entry := &timeentry.TimeEntry{UserID: 1, ProjectID: theirs.ID, StartTime: now, TotalCost: decimal.Zero, CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, NewTimeEntryRepository(db).Create(ctx, entry), repository.ErrNotFound)

	p := &payment.Payment{UserID: 1, InvoiceID: theirInvoice.ID, Amount: decimal.NewFromInt(5), PaymentMethod: payment.MethodCash,
		Status: payment.StatusPending, PaymentDate: now, CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, NewPaymentRepository(db).Create(ctx, p), repository.ErrNotFound)

	c := &jobcost.JobCost{UserID: 1, ProjectID: theirs.ID, Category: jobcost.CategoryTools, Amount: decimal.NewFromInt(5), CostDate: now, CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, NewJobCostRepository(db).Create(ctx, c), repository.ErrNotFound)

	ph := &photo.Photo{UserID: 1, ProjectID: theirs.ID, URL: "https://cdn.example.com/b.jpg", UploadedAt: now, CreatedAt: now}
	require.ErrorIs(t, NewPhotoRepository(db).Create(ctx, ph), repository.ErrNotFound)

	ev := &timeline.Event{UserID: 1, ProjectID: theirs.ID, EventType: "note", EventDate: now, CreatedAt: now}
	require.ErrorIs(t, NewTimelineRepository(db).Create(ctx, ev), repository.ErrNotFound)
}

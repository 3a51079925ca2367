package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/doctemplate"
	"github.com/rpggio/tradeledger/internal/domain/recurring"
	"github.com/rpggio/tradeledger/internal/domain/team"
)

func TestTeamRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTeamRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	role := team.RoleWorker
	m := &team.Member{UserID: 1, Name: "Sam", Role: &role, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, m))

	got, err := repo.Get(ctx, 1, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Role)
	require.Equal(t, team.RoleWorker, *got.Role)
	require.False(t, got.HourlyRate.Valid)

	rate := decimal.RequireFromString("45")
	require.NoError(t, repo.Update(ctx, 1, m.ID, team.Patch{HourlyRate: &rate, Bio: strPtr("Carpenter"), UpdatedAt: now}))

	got, err = repo.Get(ctx, 1, m.ID)
	require.NoError(t, err)
	require.True(t, got.HourlyRate.Valid)
	require.True(t, rate.Equal(got.HourlyRate.Decimal))
	require.Equal(t, "Carpenter", *got.Bio)
}

func TestTemplateRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewTemplateRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	tpl := &doctemplate.Template{UserID: 1, Name: "Standard", Type: doctemplate.TypeBid, Content: strPtr("{{total}}"), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, tpl))

	typ := doctemplate.TypeProposal
	require.NoError(t, repo.Update(ctx, 1, tpl.ID, doctemplate.Patch{Type: &typ, UpdatedAt: now}))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, doctemplate.TypeProposal, list[0].Type)
}

func TestRecurringRepository(t *testing.T) {
	db := NewTestDB(t)
	repo := NewRecurringRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")
	now := time.Now().UTC()
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	inv := &recurring.Invoice{
		UserID:          1,
		ClientID:        c.ID,
		Name:            "Monthly maintenance",
		Frequency:       recurring.FrequencyMonthly,
		Status:          recurring.StatusActive,
		StartDate:       start,
		Subtotal:        decimal.NewFromInt(200),
		TaxAmount:       decimal.Zero,
		Total:           decimal.NewFromInt(200),
		NextInvoiceDate: &start,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, repo.Create(ctx, inv))

	status := recurring.StatusPaused
	require.NoError(t, repo.Update(ctx, 1, inv.ID, recurring.Patch{Status: &status, UpdatedAt: now}))

	got, err := repo.Get(ctx, 1, inv.ID)
	require.NoError(t, err)
	require.Equal(t, recurring.StatusPaused, got.Status)
	require.Equal(t, recurring.FrequencyMonthly, got.Frequency)
	require.NotNil(t, got.NextInvoiceDate)
	require.True(t, start.Equal(*got.NextInvoiceDate))

	require.NoError(t, repo.Delete(ctx, 1, inv.ID))
	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/project"
	"github.com/rpggio/tradeledger/internal/repository"
)

func createTestProject(t *testing.T, db *DB, userID int64) *project.Project {
	t.Helper()

	now := time.Now().UTC()
	c := createTestClient(t, db, userID, "acme")
	proj := &project.Project{UserID: userID, ClientID: c.ID, Name: "Deck", Status: project.StatusPlanning, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), proj))
	return proj
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")
	now := time.Now().UTC()
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	proj := &project.Project{
		UserID:    1,
		ClientID:  c.ID,
		Name:      "Kitchen remodel",
		Status:    project.StatusPlanning,
		StartDate: &start,
		Budget:    decimal.NewNullDecimal(decimal.RequireFromString("25000.50")),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.Get(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Equal(t, "Kitchen remodel", got.Name)
	require.Equal(t, c.ID, got.ClientID)
	require.True(t, got.Budget.Valid)
	require.Equal(t, "25000.50", got.Budget.Decimal.StringFixed(2))
	require.NotNil(t, got.StartDate)
	require.True(t, start.Equal(*got.StartDate))
	require.Nil(t, got.EndDate)
	require.Zero(t, got.Progress)
}

func TestProjectRepository_NullBudget(t *testing.T) {
	db := NewTestDB(t)
	proj := createTestProject(t, db, 1)

	got, err := NewProjectRepository(db).Get(context.Background(), 1, proj.ID)
	require.NoError(t, err)
	require.False(t, got.Budget.Valid)
}

func TestProjectRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	proj := createTestProject(t, db, 1)

	status := project.StatusInProgress
	progress := int64(40)
	require.NoError(t, repo.Update(ctx, 1, proj.ID, project.Patch{Status: &status, Progress: &progress, UpdatedAt: now}))

	got, err := repo.Get(ctx, 1, proj.ID)
	require.NoError(t, err)
	require.Equal(t, project.StatusInProgress, got.Status)
	require.Equal(t, int64(40), got.Progress)

	require.ErrorIs(t, repo.Update(ctx, 2, proj.ID, project.Patch{Status: &status, UpdatedAt: now}), repository.ErrNotFound)
}

func TestProjectRepository_CreateRequiresOwnedClient(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	foreign := createTestClient(t, db, 2, "theirs")
	now := time.Now().UTC()
	for _, clientID := range []int64{foreign.ID, 9999} {
		proj := &project.Project{UserID: 1, ClientID: clientID, Name: "Deck", Status: project.StatusPlanning, CreatedAt: now, UpdatedAt: now}
		require.ErrorIs(t, repo.Create(ctx, proj), repository.ErrNotFound)
	}

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list)
}

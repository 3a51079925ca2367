package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/repository"
)

func strPtr(s string) *string { return &s }

func createTestClient(t *testing.T, db *DB, userID int64, name string) *client.Client {
	t.Helper()

	now := time.Now().UTC()
	c := &client.Client{
		UserID:    userID,
		Name:      name,
		Email:     strPtr(name + "@example.com"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, NewClientRepository(db).Create(context.Background(), c))
	return c
}

func TestClientRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")
	require.NotZero(t, c.ID)

	retrieved, err := repo.Get(ctx, 1, c.ID)
	require.NoError(t, err)
	require.Equal(t, "acme", retrieved.Name)
	require.Equal(t, "acme@example.com", *retrieved.Email)
	require.Nil(t, retrieved.Phone)
	require.WithinDuration(t, c.CreatedAt, retrieved.CreatedAt, time.Second)
}

func TestClientRepository_GetOtherOwner(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)

	c := createTestClient(t, db, 1, "acme")

	_, err := repo.Get(context.Background(), 2, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	empty, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	first := createTestClient(t, db, 1, "first")
	second := createTestClient(t, db, 1, "second")
	createTestClient(t, db, 2, "foreign")

	clients, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	require.Equal(t, first.ID, clients[0].ID)
	require.Equal(t, second.ID, clients[1].ID)
}

func TestClientRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")
	later := c.UpdatedAt.Add(time.Hour)

	err := repo.Update(ctx, 1, c.ID, client.Patch{
		Phone:     strPtr("555-0100"),
		City:      strPtr("Springfield"),
		UpdatedAt: later,
	})
	require.NoError(t, err)

	updated, err := repo.Get(ctx, 1, c.ID)
	require.NoError(t, err)
	require.Equal(t, "acme", updated.Name)
	require.Equal(t, "555-0100", *updated.Phone)
	require.Equal(t, "Springfield", *updated.City)
	require.WithinDuration(t, later, updated.UpdatedAt, time.Second)
}

func TestClientRepository_UpdateEmptyPatch(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")

	require.NoError(t, repo.Update(ctx, 1, c.ID, client.Patch{UpdatedAt: time.Now().UTC()}))

	err := repo.Update(ctx, 1, 999, client.Patch{UpdatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepository_UpdateOtherOwner(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)

	c := createTestClient(t, db, 1, "acme")

	err := repo.Update(context.Background(), 2, c.ID, client.Patch{Name: strPtr("stolen"), UpdatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := createTestClient(t, db, 1, "acme")

	require.ErrorIs(t, repo.Delete(ctx, 2, c.ID), repository.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, 1, c.ID))
	require.ErrorIs(t, repo.Delete(ctx, 1, c.ID), repository.ErrNotFound)

	_, err := repo.Get(ctx, 1, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

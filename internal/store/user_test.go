package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/user"
	"github.com/rpggio/tradeledger/internal/repository"
)

func TestUserRepository_UpsertInsertsThenUpdates(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	created, err := repo.Upsert(ctx, user.Upsert{
		OpenID:      "oid-1",
		Name:        strPtr("Ada"),
		LoginMethod: strPtr("github"),
		Role:        user.RoleUser,
		SignedInAt:  first,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Ada", *created.Name)
	require.Nil(t, created.Email)
	require.Equal(t, user.RoleUser, created.Role)

	second := first.Add(24 * time.Hour)
	updated, err := repo.Upsert(ctx, user.Upsert{
		OpenID:     "oid-1",
		Email:      strPtr("ada@example.com"),
		Role:       user.RoleAdmin,
		SignedInAt: second,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Ada", *updated.Name, "absent name is left untouched")
	require.Equal(t, "ada@example.com", *updated.Email)
	require.Equal(t, user.RoleUser, updated.Role, "role is not overwritten without the flag")
	require.WithinDuration(t, second, updated.LastSignedIn, time.Second)
	require.WithinDuration(t, first, updated.CreatedAt, time.Second)
}

func TestUserRepository_UpsertOverwritesRole(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, user.Upsert{OpenID: "oid-1", Role: user.RoleUser, SignedInAt: time.Now().UTC()})
	require.NoError(t, err)

	u, err := repo.Upsert(ctx, user.Upsert{
		OpenID:        "oid-1",
		Role:          user.RoleAdmin,
		OverwriteRole: true,
		SignedInAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, user.RoleAdmin, u.Role)

	byOpenID, err := repo.GetByOpenID(ctx, "oid-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, byOpenID.ID)

	byID, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "oid-1", byID.OpenID)
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByOpenID(context.Background(), "nobody")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

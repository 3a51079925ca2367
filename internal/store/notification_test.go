package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/domain/notification"
	"github.com/rpggio/tradeledger/internal/repository"
)

func createTestNotification(t *testing.T, repo *NotificationRepository, userID int64, title string) *notification.Notification {
	t.Helper()

	n := &notification.Notification{UserID: userID, Title: title, Type: strPtr("info"), CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createTestNotification(t, repo, 1, "Invoice paid")

	require.ErrorIs(t, repo.MarkRead(ctx, 2, n.ID), repository.ErrNotFound)
	require.NoError(t, repo.MarkRead(ctx, 1, n.ID))
	require.NoError(t, repo.MarkRead(ctx, 1, n.ID))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].IsRead)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	first := createTestNotification(t, repo, 1, "one")
	createTestNotification(t, repo, 1, "two")
	createTestNotification(t, repo, 1, "three")
	createTestNotification(t, repo, 2, "foreign")

	require.NoError(t, repo.MarkRead(ctx, 1, first.ID))

	changed, err := repo.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), changed)

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	for _, n := range list {
		require.True(t, n.IsRead)
	}

	foreign, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, foreign, 1)
	require.False(t, foreign[0].IsRead)
}

func TestNotificationRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := createTestNotification(t, repo, 1, "bye")
	require.NoError(t, repo.Delete(ctx, 1, n.ID))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list)
}

package store

import (
	"context"
	"fmt"

	"github.com/rpggio/tradeledger/internal/domain/notification"
)

const notificationColumns = "id, user_id, title, content, type, is_read, created_at"

// NotificationRepository implements notification.Repository.
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func scanNotification(s scanner) (*notification.Notification, error) {
	var n notification.Notification
	if err := s.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns the user's notifications in creation order.
func (r *NotificationRepository) List(ctx context.Context, userID int64) ([]notification.Notification, error) {
	list, err := queryList(ctx, r.db, scanNotification,
		"SELECT "+notificationColumns+" FROM notifications WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (user_id, title, content, type, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`, n.UserID, n.Title, n.Content, n.Type, n.IsRead, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// MarkRead flags one notification as read. Marking an already read
// notification succeeds.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = ? WHERE id = ? AND user_id = ?", true, id, userID)
	if err == nil {
		err = requireAffected(result)
	}
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flags every unread notification of the user and returns how
// many changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = ? WHERE user_id = ? AND is_read = ?", true, userID, false)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteOwned(ctx, r.db, "notifications", userID, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

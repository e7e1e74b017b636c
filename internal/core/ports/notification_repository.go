package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// NotificationRepository defines the persistence interface for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// ListUnread returns unread notifications ordered newest-first.
	ListUnread(ctx context.Context, limit int) ([]*domain.Notification, error)
	// MarkRead flips is_read to true and returns the updated document.
	// Marking an already-read notification is a no-op returning the record.
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
}

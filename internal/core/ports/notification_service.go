package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// CreateNotificationInput carries the data for a new notification.
type CreateNotificationInput struct {
	Message string
	// Type defaults to INFO when empty.
	Type          domain.NotificationType
	Link          string
	RecipientID   string
	RecipientRole domain.RecipientRole
}

// NotificationService defines the notification use cases.
//
// Create is best-effort: a persistence failure is logged and swallowed and
// the call returns (nil, nil), so a failed notification can never abort the
// caller's primary action.
type NotificationService interface {
	Create(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) (*domain.Notification, error)
	ListUnread(ctx context.Context, limit int) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
}

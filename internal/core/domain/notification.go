package domain

import "time"

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"
)

// RecipientRole targets a notification at a class of administrators.
type RecipientRole string

const (
	RecipientAdmin      RecipientRole = "ROLE_ADMIN"
	RecipientSuperAdmin RecipientRole = "ROLE_SUPER_ADMIN"
)

// NotificationRetention is how long a notification lives before the store
// purges it automatically (TTL index on created_at).
const NotificationRetention = 90 * 24 * time.Hour

// Notification is a transient system message directed at a role or a
// specific recipient. Its only explicit state transition is unread to read;
// expiry happens in the store, outside application control.
//
// Both targeting fields are optional. When both are set, RecipientID takes
// precedence and RecipientRole is treated as advisory fan-out.
type Notification struct {
	ID            string           `json:"id"`
	Message       string           `json:"message"`
	Type          NotificationType `json:"type"`
	IsRead        bool             `json:"is_read"`
	Link          string           `json:"link,omitempty"`
	RecipientRole RecipientRole    `json:"recipient_role,omitempty"`
	RecipientID   string           `json:"recipient_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

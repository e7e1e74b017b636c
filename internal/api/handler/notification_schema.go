package handler

// createNotificationRequest is the payload for POST /admin/notifications.
// Both targeting fields are optional; recipient_id wins when both are set.
type createNotificationRequest struct {
	Message       string `json:"message"        validate:"required,min=1"`
	Type          string `json:"type"           validate:"omitempty,oneof=INFO WARNING ERROR"`
	Link          string `json:"link"           validate:"omitempty,url"`
	RecipientID   string `json:"recipient_id"   validate:"omitempty"`
	RecipientRole string `json:"recipient_role" validate:"omitempty,oneof=ROLE_ADMIN ROLE_SUPER_ADMIN"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// NotificationHandler handles the notification endpoints.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListUnread handles GET /admin/notifications.
//
// @Summary      List unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      500  {object}  map[string]string
// @Router       /admin/notifications [get]
func (h *NotificationHandler) ListUnread(c echo.Context) error {
	notifications, err := h.service.ListUnread(c.Request().Context(), 0)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []*domain.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /admin/notifications/unread-count.
//
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  unreadCountResponse
// @Failure      500  {object}  map[string]string
// @Router       /admin/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.service.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// Create handles POST /admin/notifications. A persistence failure is part of
// the best-effort contract: the request is still acknowledged with 202.
//
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      createNotificationRequest  true  "Notification details"
// @Success      201   {object}  domain.Notification
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /admin/notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateNotificationInput{
		Message:       req.Message,
		Type:          domain.NotificationType(req.Type),
		Link:          req.Link,
		RecipientID:   req.RecipientID,
		RecipientRole: domain.RecipientRole(req.RecipientRole),
	})
	if err != nil {
		return err
	}
	if created == nil {
		return c.JSON(http.StatusAccepted, messageResponse{Message: "notification accepted"})
	}
	return c.JSON(http.StatusCreated, created)
}

// MarkRead handles PATCH /admin/notifications/:id/mark-read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  map[string]string
// @Router       /admin/notifications/{id}/mark-read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notification, err := h.service.MarkAsRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// AuditHandler exposes the read side of the audit trail.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Recent handles GET /admin/audit-logs.
//
// @Summary      List recent audit log entries
// @Tags         audit
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries to return (default and cap 100)"
// @Success      200    {array}   domain.AuditEntry
// @Failure      500    {object}  map[string]string
// @Router       /admin/audit-logs [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// actorHeader carries the acting administrator's identity. The value is
// trusted as-is: the admin API is assumed to sit behind an authentication
// gate that owns verification.
const actorHeader = "x-admin-user"

// actorFrom extracts the audit actor from the request, defaulting to the
// SYSTEM actor when the header is absent.
func actorFrom(c echo.Context) string {
	if actor := c.Request().Header.Get(actorHeader); actor != "" {
		return actor
	}
	return domain.SystemActor
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// UserHandler handles the administrative user-management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /admin/users.
//
// @Summary      List administrative users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      500  {object}  map[string]string
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /admin/users.
//
// @Summary      Create an administrative user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        x-admin-user  header    string             false  "Acting administrator"
// @Param        body          body      createUserRequest  true   "User details"
// @Success      201           {object}  domain.User
// @Failure      400           {object}  map[string]string
// @Failure      500           {object}  map[string]string
// @Router       /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		Phone:    req.Phone,
		Actor:    actorFrom(c),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /admin/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /admin/users/:id.
//
// @Summary      Delete a user by id
// @Tags         users
// @Produce      json
// @Param        x-admin-user  header    string  false  "Acting administrator"
// @Param        id            path      string  true   "User id"
// @Success      200           {object}  messageResponse
// @Failure      404           {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

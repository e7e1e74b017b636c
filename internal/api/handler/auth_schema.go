package handler

import "github.com/oceanlk/admin-api/internal/core/domain"

type loginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=SUPER_ADMIN ADMIN USER"`
	Phone    string `json:"phone"    validate:"omitempty"`
}

// authResponse wraps the sanitized user. No token is issued: session
// management lives outside this service.
type authResponse struct {
	User *domain.User `json:"user"`
}

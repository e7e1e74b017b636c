package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a self-registered account.
type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
	// Role defaults to USER when empty.
	Role  domain.Role
	Phone string
}

// AuthService verifies credentials and registers new accounts. No session or
// token is issued here; the caller owns whatever comes after a successful
// authentication.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}

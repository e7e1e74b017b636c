package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// CreateUserInput carries the data for an administratively created account.
type CreateUserInput struct {
	Name     string
	Email    string
	Username string
	Password string
	// Role must be ADMIN or SUPER_ADMIN.
	Role  domain.Role
	Phone string
	// Actor is the identity the creation is audited under.
	Actor string
}

// UserService defines the administrative user-management use cases.
// All returned users are sanitized.
type UserService interface {
	ListAdmins(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id, actor string) error
}

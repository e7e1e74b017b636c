package ports

import (
	"context"
	"time"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// FindByUsername returns the password hash (needed for credential checks);
// every other read returns it too and callers are expected to Sanitize.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	ListByRoles(ctx context.Context, roles ...domain.Role) ([]*domain.User, error)
	// Delete removes the user and returns the deleted record so callers can
	// attribute audit details.
	Delete(ctx context.Context, id string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

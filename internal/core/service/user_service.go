package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oceanlk/admin-api/internal/api/metrics"
	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// UserService implements the administrative user-management use cases.
// Mutations are audited through the fire-and-forget recorder.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

// ListAdmins returns all ADMIN and SUPER_ADMIN accounts, sanitized, newest
// first by creation date.
func (s *UserService) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.ListByRoles(ctx, domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitize())
	}
	return out, nil
}

// Create provisions an administrative account. Accounts created here are
// auto-verified: a super admin vouched for them.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !in.Role.Administrative() {
		return nil, domain.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.ToLower(strings.TrimSpace(in.Username))

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Phone:        in.Phone,
		Active:       true,
		Verified:     true,
		CreatedDate:  time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Username:   in.Actor,
		Action:     domain.ActionCreateUser,
		EntityType: "User",
		EntityID:   created.ID,
		Details:    "Created user: " + created.Username,
	})

	metrics.UsersCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Str("username", created.Username).Str("actor", in.Actor).Msg("admin user created")
	return created.Sanitize(), nil
}

// Get returns a single sanitized user.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// Delete removes a user and records the deletion against the acting admin.
func (s *UserService) Delete(ctx context.Context, id, actor string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Username:   actor,
		Action:     domain.ActionDeleteUser,
		EntityType: "User",
		EntityID:   id,
		Details:    "Deleted user: " + deleted.Username,
	})

	metrics.UsersDeletedTotal.Inc()
	s.log.Info().Str("username", deleted.Username).Str("actor", actor).Msg("user deleted")
	return nil
}

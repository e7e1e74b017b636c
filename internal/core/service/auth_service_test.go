package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by id
	nextID    int
	createErr error
	deleteErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "id-" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ListByRoles(_ context.Context, roles ...domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, cloneUser(u))
				break
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	if r.deleteErr != nil {
		return nil, r.deleteErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginDate = &at
	return nil
}

func mustRegister(t *testing.T, svc *AuthService, in ports.RegisterInput) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	user := mustRegister(t, svc, ports.RegisterInput{
		Name:     "Alice Fernando",
		Email:    "Alice@Example.com",
		Username: "Alice",
		Password: "longenough",
	})

	if user.PasswordHash != "" {
		t.Fatalf("expected sanitized user, got hash %q", user.PasswordHash)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", user.Role)
	}
	if user.Verified {
		t.Fatalf("self-registered user must not be verified")
	}
	if !user.Active {
		t.Fatalf("new user must be active")
	}
	if user.Email != "alice@example.com" || user.Username != "alice" {
		t.Fatalf("expected lowercased identity, got %s / %s", user.Email, user.Username)
	}

	stored := repo.users[user.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "longenough" {
		t.Fatalf("expected stored password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	mustRegister(t, svc, ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Username: "bob", Password: "longenough",
	})

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob Two", Email: "BOB@example.com", Username: "other", Password: "longenough",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob Two", Email: "other@example.com", Username: "BOB", Password: "longenough",
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected no new documents, got %d", len(repo.users))
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eve", Email: "eve@example.com", Username: "eve", Password: "longenough", Role: "ROOT",
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	registered := mustRegister(t, svc, ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Username: "carol", Password: "s3cretpass",
	})

	user, err := svc.Authenticate(context.Background(), "Carol", "s3cretpass")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("authenticated user must not carry a password hash")
	}
	if user.LastLoginDate == nil {
		t.Fatalf("expected last login date to be set")
	}
	if repo.users[registered.ID].LastLoginDate == nil {
		t.Fatalf("expected last login date to be persisted")
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	mustRegister(t, svc, ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Username: "dave", Password: "goodpass1",
	})

	if _, err := svc.Authenticate(context.Background(), "dave", "badpass99"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUserSameError(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever1")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username must report invalid credentials, got %v", err)
	}
	if strings.Contains(err.Error(), "not found") {
		t.Fatalf("error message must not leak account existence: %v", err)
	}
}

func TestAuthService_Authenticate_DeactivatedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	registered := mustRegister(t, svc, ports.RegisterInput{
		Name: "Frank", Email: "frank@example.com", Username: "frank", Password: "correct-pw",
	})
	repo.users[registered.ID].Active = false

	// Correct password, deactivated account: still rejected.
	if _, err := svc.Authenticate(context.Background(), "frank", "correct-pw"); !errors.Is(err, domain.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "frank", "wrong-pw11"); !errors.Is(err, domain.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated regardless of password, got %v", err)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username != "alice" || password != "longenough" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &domain.User{ID: "u1", Username: "alice", Role: domain.RoleAdmin, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"longenough"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if _, ok := resp["user"]["password"]; ok {
		t.Fatalf("response must not contain a password field: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Username below the 3-character minimum.
	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"ab","password":"longenough"}`)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_DomainErrorsSurface(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrAccountDeactivated} {
		stub := &stubAuthService{
			authenticateFn: func(context.Context, string, string) (*domain.User, error) {
				return nil, want
			},
		}
		h := NewAuthHandler(stub)

		c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"longenough"}`)
		if err := h.Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v to surface, got %v", want, err)
		}
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Role != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Name: in.Name, Username: in.Username, Role: domain.RoleUser, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"name":"Alice F","email":"alice@example.com","username":"alice","password":"longenough"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

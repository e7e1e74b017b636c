package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	deleteFn func(ctx context.Context, id, actor string) error
}

func (s *stubUserService) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Delete(ctx context.Context, id, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Actor != "root" {
				t.Fatalf("expected actor from header, got %q", in.Actor)
			}
			if in.Role != domain.RoleAdmin {
				t.Fatalf("unexpected role: %s", in.Role)
			}
			return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Username: in.Username, Role: in.Role, Active: true, Verified: true}, nil
		},
	}
	h := NewUserHandler(stub)

	body := `{"name":"A B","email":"a@b.com","username":"ab1","password":"longenough","role":"ADMIN"}`
	c, rec := newTestContext(t, http.MethodPost, "/admin/users", body)
	c.Request().Header.Set("x-admin-user", "root")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("response must not contain a password field: %s", rec.Body.String())
	}
	if resp["username"] != "ab1" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_ValidationFailure(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	// Password below the 8-character minimum.
	body := `{"name":"A B","email":"a@b.com","username":"ab1","password":"short","role":"ADMIN"}`
	c, _ := newTestContext(t, http.MethodPost, "/admin/users", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	body := `{"name":"A B","email":"a@b.com","username":"ab1","password":"longenough","role":"ADMIN"}`
	c, _ := newTestContext(t, http.MethodPost, "/admin/users", body)

	if err := h.Create(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to surface, got %v", err)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/admin/users/unknown", "")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	var gotID, gotActor string
	stub := &stubUserService{
		deleteFn: func(_ context.Context, id, actor string) error {
			gotID, gotActor = id, actor
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/admin/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "u1" || gotActor != domain.SystemActor {
		t.Fatalf("expected SYSTEM default actor, got id=%q actor=%q", gotID, gotActor)
	}
}

func TestUserHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubUserService{
		listFn: func(context.Context) ([]*domain.User, error) { return nil, nil },
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", rec.Body.String())
	}
}

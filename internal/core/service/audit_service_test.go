package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

type stubAuditRepo struct {
	entries   []domain.AuditEntry
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditRepo) Recent(_ context.Context, limit int) ([]*domain.AuditEntry, error) {
	var out []*domain.AuditEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		clone := r.entries[i]
		out = append(out, &clone)
	}
	return out, nil
}

func TestAuditService_Record_Defaults(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	svc.Record(context.Background(), domain.AuditEntry{
		Action:     domain.ActionCreateUser,
		EntityType: "User",
	})

	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Username != domain.SystemActor {
		t.Fatalf("expected SYSTEM actor default, got %q", entry.Username)
	}
	if entry.Timestamp.IsZero() {
		t.Fatalf("expected timestamp default")
	}
}

func TestAuditService_Record_NeverRaises(t *testing.T) {
	repo := &stubAuditRepo{insertErr: errors.New("capped collection gone")}
	svc := NewAuditService(repo, zerolog.Nop())

	// Must not panic or surface the failure in any way.
	svc.Record(context.Background(), domain.AuditEntry{
		Username:   "admin",
		Action:     domain.ActionDeleteUser,
		EntityType: "User",
	})
}

// A user mutation must succeed even when every audit write fails.
func TestAuditService_PrimaryActionSurvivesAuditFailure(t *testing.T) {
	userRepo := newStubUserRepo()
	failingAudit := NewAuditService(&stubAuditRepo{insertErr: errors.New("mongo down")}, zerolog.Nop())
	users := NewUserService(userRepo, failingAudit, zerolog.Nop())

	user, err := users.Create(context.Background(), createAdminInput("a@b.com", "ab1"))
	if err != nil {
		t.Fatalf("create must succeed despite audit failure: %v", err)
	}
	if err := users.Delete(context.Background(), user.ID, "superadmin"); err != nil {
		t.Fatalf("delete must succeed despite audit failure: %v", err)
	}
}

func TestAuditService_Recent_Clamped(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo, zerolog.Nop())

	for i := 0; i < 150; i++ {
		svc.Record(context.Background(), domain.AuditEntry{
			Username: "admin", Action: domain.ActionCreateUser, EntityType: "User",
		})
	}

	entries, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("expected clamp to 100, got %d", len(entries))
	}
}

package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// AuditRecorder records administrative actions. Record is fire-and-forget:
// implementations catch and log their own failures and never surface them,
// so auditing can never fail the action being audited.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// AuditService is the full audit surface: recording plus the read side used
// by the admin console.
type AuditService interface {
	AuditRecorder
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

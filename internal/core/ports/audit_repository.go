package ports

import (
	"context"

	"github.com/oceanlk/admin-api/internal/core/domain"
)

// AuditRepository defines the persistence interface for the append-only
// audit trail. There is deliberately no update or delete: eviction is the
// capped collection's job.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// Recent returns the newest entries by timestamp descending.
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

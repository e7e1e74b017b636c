package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/oceanlk/admin-api/internal/api/metrics"
	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// auditRecentLimit caps how many audit entries a single listing returns.
const auditRecentLimit = 100

// AuditService writes and reads the administrative audit trail. Record is
// fire-and-forget: a failed write is logged, counted, and discarded so the
// action being audited always completes.
type AuditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record persists one audit entry, best effort. A blank actor defaults to
// SYSTEM and a zero timestamp to now.
func (s *AuditService) Record(ctx context.Context, entry domain.AuditEntry) {
	if entry.Username == "" {
		entry.Username = domain.SystemActor
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		s.log.Error().Err(err).
			Str("action", entry.Action).
			Str("entity_type", entry.EntityType).
			Str("actor", entry.Username).
			Msg("failed to write audit log")
	}
}

// Recent returns the newest audit entries, capped at a fixed page size.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 || limit > auditRecentLimit {
		limit = auditRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}

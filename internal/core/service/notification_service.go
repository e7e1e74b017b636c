package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/oceanlk/admin-api/internal/api/metrics"
	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

// maxUnreadPage caps how many unread notifications a single listing returns.
const maxUnreadPage = 50

// UnreadCounter abstracts the cached unread count (Redis). A nil or failing
// counter degrades to counting in the store.
type UnreadCounter interface {
	Get(ctx context.Context) (count int64, ok bool, err error)
	Set(ctx context.Context, count int64) error
	Invalidate(ctx context.Context) error
}

// NotificationService implements notification creation, listing, and the
// single unread-to-read transition.
type NotificationService struct {
	repo    ports.NotificationRepository
	counter UnreadCounter
	log     zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, counter UnreadCounter, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, counter: counter, log: log}
}

// Create persists a new unread notification. Persistence failures are
// swallowed: the error is logged and (nil, nil) is returned so a failed
// notification never aborts the caller's primary action.
func (s *NotificationService) Create(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	typ := in.Type
	if typ == "" {
		typ = domain.NotificationInfo
	}

	n := &domain.Notification{
		Message:       in.Message,
		Type:          typ,
		IsRead:        false,
		Link:          in.Link,
		RecipientRole: in.RecipientRole,
		RecipientID:   in.RecipientID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, n)
	if err != nil {
		metrics.NotificationsSwallowedTotal.Inc()
		s.log.Error().Err(err).Str("type", string(typ)).Msg("failed to create notification")
		return nil, nil
	}

	s.invalidateCount(ctx)
	metrics.NotificationsCreatedTotal.WithLabelValues(string(typ)).Inc()
	return created, nil
}

// MarkAsRead flips a notification to read. The transition is one-way and
// idempotent: marking an already-read notification returns the unchanged
// record without error.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidateCount(ctx)
	metrics.NotificationsMarkedReadTotal.Inc()
	return n, nil
}

// ListUnread returns unread notifications newest-first, clamped to the fixed
// page size.
func (s *NotificationService) ListUnread(ctx context.Context, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > maxUnreadPage {
		limit = maxUnreadPage
	}
	return s.repo.ListUnread(ctx, limit)
}

// UnreadCount returns the number of unread notifications, served from the
// cache when warm. Cache failures degrade to a store count with a warn log.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	if s.counter != nil {
		count, ok, err := s.counter.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("unread count cache read failed")
		} else if ok {
			return count, nil
		}
	}

	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, err
	}

	if s.counter != nil {
		if err := s.counter.Set(ctx, count); err != nil {
			s.log.Warn().Err(err).Msg("unread count cache write failed")
		}
	}
	return count, nil
}

func (s *NotificationService) invalidateCount(ctx context.Context) {
	if s.counter == nil {
		return
	}
	if err := s.counter.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("unread count cache invalidation failed")
	}
}

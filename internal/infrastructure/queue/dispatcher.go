package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/oceanlk/admin-api/internal/api/metrics"
	"github.com/oceanlk/admin-api/internal/core/domain"
	"github.com/oceanlk/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher decouples audit writes from the request path. Entries are
// routed to a fixed set of workers sharded by actor username, preserving
// per-actor ordering. Enqueueing never blocks: when a worker's buffer is full
// the entry is dropped and counted, honouring the fire-and-forget contract.
//
// It implements ports.AuditRecorder and wraps the synchronous recorder that
// performs the actual write.
type AuditDispatcher struct {
	workers  []chan domain.AuditEntry
	recorder ports.AuditRecorder
	log      zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, recorder ports.AuditRecorder, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers:  make([]chan domain.AuditEntry, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled;
// entries still queued at that point are dropped.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for background persistence. The caller's context
// is deliberately not carried into the write: the request may complete and
// cancel before the worker gets to the entry.
func (d *AuditDispatcher) Record(_ context.Context, entry domain.AuditEntry) {
	select {
	case d.workers[d.shardIndex(entry.Username)] <- entry:
	default:
		metrics.AuditQueueDroppedTotal.Inc()
		d.log.Warn().
			Str("action", entry.Action).
			Str("actor", entry.Username).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor username deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			d.recorder.Record(ctx, entry)
		}
	}
}

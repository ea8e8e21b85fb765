package chat

import (
	"context"
	"log/slog"
	"time"
)

const defaultRetentionInterval = time.Hour

// RetentionWorker periodically deletes chat messages past their retention.
type RetentionWorker struct {
	store     *ConversationStore
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewRetentionWorker creates a worker that runs hourly. A zero retention
// disables it.
func NewRetentionWorker(store *ConversationStore, retention time.Duration, logger *slog.Logger) *RetentionWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetentionWorker{
		store:     store,
		retention: retention,
		interval:  defaultRetentionInterval,
		logger:    logger,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (w *RetentionWorker) Run(ctx context.Context) {
	if w.store == nil || w.retention <= 0 {
		w.logger.Info("chat retention worker disabled",
			slog.Bool("has_store", w.store != nil),
			slog.Duration("retention", w.retention))
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("chat retention worker started",
		slog.Duration("retention", w.retention),
		slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("chat retention worker stopped")
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *RetentionWorker) cleanup() int64 {
	cutoff := w.now().Add(-w.retention)
	deleted, err := w.store.DeleteOlderThan(cutoff)
	if err != nil {
		w.logger.Error("chat retention cleanup failed", slog.Any("error", err))
		return 0
	}
	if deleted > 0 {
		w.logger.Info("chat retention cleanup completed",
			slog.Int64("deleted", deleted),
			slog.String("cutoff", cutoff.Format(time.RFC3339)))
	}
	return deleted
}

package worker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classgrid/timetable-backend/internal/config"
	"github.com/classgrid/timetable-backend/internal/service"
)

// SnapshotWorker consumes the timetable refresh queue and rebuilds the cached
// weekly view after every mutation. Mutations only invalidate and enqueue, so
// request latency never pays for the rebuild.
type SnapshotWorker struct {
	scheduleService *service.ScheduleService
	rdb             *redis.Client
	log             zerolog.Logger
}

// NewSnapshotWorker creates a new SnapshotWorker.
func NewSnapshotWorker(scheduleService *service.ScheduleService, rdb *redis.Client, log zerolog.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		scheduleService: scheduleService,
		rdb:             rdb,
		log:             log.With().Str("component", "snapshot_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine.
func (w *SnapshotWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// One final rebuild so the snapshot is fresh after shutdown.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *SnapshotWorker) processNext(ctx context.Context) {
	// BLPop blocks until a refresh token is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.CacheKey.RefreshQueueKey()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}
	if len(result) < 2 {
		return
	}

	// Collapse any backlog: one rebuild covers every queued mutation.
	if err := w.rdb.Del(ctx, config.CacheKey.RefreshQueueKey()).Err(); err != nil {
		w.log.Warn().Err(err).Msg("Queue collapse failed")
	}

	if _, err := w.scheduleService.RebuildWeeklyCache(ctx); err != nil {
		w.log.Error().Err(err).Str("trigger", result[1]).Msg("Snapshot rebuild failed, retrying in 5s")
		w.rdb.RPush(ctx, config.CacheKey.RefreshQueueKey(), result[1])
		time.Sleep(5 * time.Second)
		return
	}

	w.log.Debug().Str("trigger", result[1]).Msg("Snapshot rebuilt")
}

func (w *SnapshotWorker) drain(ctx context.Context) {
	n, err := w.rdb.LLen(ctx, config.CacheKey.RefreshQueueKey()).Result()
	if err != nil || n == 0 {
		return
	}
	w.rdb.Del(ctx, config.CacheKey.RefreshQueueKey())
	if _, err := w.scheduleService.RebuildWeeklyCache(ctx); err != nil {
		w.log.Error().Err(err).Msg("Final snapshot rebuild failed")
	}
}

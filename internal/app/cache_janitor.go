package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/riskibarqy/fpl-insight/internal/platform/cache"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
)

const defaultCachePurgeInterval = 5 * time.Minute

// cacheJanitor drops expired payloads on a fixed interval, mostly live keys of
// past gameweeks that are never read again.
type cacheJanitor struct {
	cache     *cache.Store
	interval  time.Duration
	logger    *logging.Logger
	scheduler gocron.Scheduler
}

func newCacheJanitor(store *cache.Store, interval time.Duration, logger *logging.Logger) (*cacheJanitor, error) {
	if interval <= 0 {
		interval = defaultCachePurgeInterval
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create cache purge scheduler: %w", err)
	}
	return &cacheJanitor{
		cache:     store,
		interval:  interval,
		logger:    logger.Named("cache_janitor"),
		scheduler: scheduler,
	}, nil
}

func (j *cacheJanitor) Start() error {
	_, err := j.scheduler.NewJob(
		gocron.DurationJob(j.interval),
		gocron.NewTask(func() { j.purgeOnce(context.Background()) }),
		gocron.WithName("cache-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create cache purge job: %w", err)
	}
	j.scheduler.Start()
	return nil
}

func (j *cacheJanitor) purgeOnce(ctx context.Context) int {
	removed := j.cache.Purge(ctx)
	if removed > 0 {
		j.logger.DebugContext(ctx, "expired cache entries purged", "removed", removed)
	}
	return removed
}

func (j *cacheJanitor) Stop() error {
	if err := j.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown cache purge scheduler: %w", err)
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
)

const defaultLivePollInterval = time.Minute

// LiveStatsSource is what the poller drives; *Store satisfies it.
type LiveStatsSource interface {
	FetchLiveStats(ctx context.Context) (bool, error)
}

// LivePoller periodically pulls the live gameweek feed into the store.
// Poll failures are logged and the next tick retries.
type LivePoller struct {
	source    LiveStatsSource
	interval  time.Duration
	logger    *logging.Logger
	scheduler gocron.Scheduler

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func NewLivePoller(source LiveStatsSource, interval time.Duration, logger *logging.Logger) (*LivePoller, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: live stats source is required", ErrInvalidInput)
	}
	if interval <= 0 {
		interval = defaultLivePollInterval
	}
	if logger == nil {
		logger = logging.Default()
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create live poll scheduler: %w", err)
	}

	return &LivePoller{
		source:    source,
		interval:  interval,
		logger:    logger.Named("live_poller"),
		scheduler: scheduler,
	}, nil
}

// Start schedules the poll job. ctx bounds every poll; cancelling it stops
// further upstream calls but not the scheduler itself, use Stop for that.
func (p *LivePoller) Start(ctx context.Context) error {
	p.mu.Lock()
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	_, err := p.scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(p.tick),
		gocron.WithName("live-stats-poll"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create live poll job: %w", err)
	}

	p.scheduler.Start()
	p.logger.Info("live poller started", "interval", p.interval.String())
	return nil
}

func (p *LivePoller) tick() {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	p.PollOnce(ctx)
}

// PollOnce runs a single poll and reports whether live stats changed.
func (p *LivePoller) PollOnce(ctx context.Context) bool {
	changed, err := p.source.FetchLiveStats(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "live stats poll failed", "error", err)
		return false
	}
	if changed {
		p.logger.DebugContext(ctx, "live stats updated")
	}
	return changed
}

func (p *LivePoller) Stop() error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	if err := p.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("shutdown live poll scheduler: %w", err)
	}
	return nil
}

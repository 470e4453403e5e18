package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
)

const warmupPoolSize = 2

// FetchBootstrapData loads teams, players and events. A valid cache entry is
// applied without touching the network. On any upstream failure the built-in
// reference dataset is applied instead and the store is marked degraded; the
// failure is logged and never returned.
func (s *Store) FetchBootstrapData(ctx context.Context) DataSource {
	ctx, span := startUsecaseSpan(ctx, "usecase.Store.FetchBootstrapData")
	defer span.End()

	s.beginLoad()
	value, fromCache, err := s.cache.GetOrLoad(ctx, CacheKeyBootstrap, s.cfg.BootstrapTTL, func(ctx context.Context) (any, error) {
		data, err := s.fetcher.LoadBootstrap(ctx)
		if err != nil {
			return nil, err
		}
		set := normalizeBootstrap(data)
		if set.rejected > 0 {
			s.logger.WarnContext(ctx, "bootstrap records failed validation", "cache_key", CacheKeyBootstrap, "rejected", set.rejected)
		}
		return set, nil
	})

	source := sourceOf(fromCache)
	set, ok := value.(*bootstrapSet)
	if err == nil && !ok {
		err = fmt.Errorf("%w: unexpected cache value %T for %s", ErrParse, value, CacheKeyBootstrap)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "bootstrap load failed, using fallback dataset", "cache_key", CacheKeyBootstrap, "error", err)
		set, source = s.fallbackBootstrap, SourceFallback
	} else if fromCache {
		s.logger.DebugContext(ctx, "bootstrap served from cache", "cache_key", CacheKeyBootstrap)
	}
	span.SetAttributes(attribute.String("source", string(source)))

	s.mu.Lock()
	s.inFlight--
	s.bootstrapSource = source
	s.markDegradedLocked(CacheKeyBootstrap, err)
	changed := s.bootstrap != set
	if changed {
		s.bootstrap = set
	}
	var change Change
	var listeners []Listener
	if changed {
		change, listeners = s.commitLocked(ChangeBootstrap, nil)
	}
	s.mu.Unlock()

	notify(change, listeners)
	return source
}

// FetchFixtures follows the same cache, fetch, fallback sequence as
// FetchBootstrapData against the fixtures key.
func (s *Store) FetchFixtures(ctx context.Context) DataSource {
	ctx, span := startUsecaseSpan(ctx, "usecase.Store.FetchFixtures")
	defer span.End()

	s.beginLoad()
	value, fromCache, err := s.cache.GetOrLoad(ctx, CacheKeyFixtures, s.cfg.FixturesTTL, func(ctx context.Context) (any, error) {
		items, err := s.fetcher.LoadFixtures(ctx)
		if err != nil {
			return nil, err
		}
		set := normalizeFixtures(items)
		if set.rejected > 0 {
			s.logger.WarnContext(ctx, "fixtures failed validation", "cache_key", CacheKeyFixtures, "rejected", set.rejected)
		}
		return set, nil
	})

	source := sourceOf(fromCache)
	set, ok := value.(*fixtureSet)
	if err == nil && !ok {
		err = fmt.Errorf("%w: unexpected cache value %T for %s", ErrParse, value, CacheKeyFixtures)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "fixtures load failed, using fallback dataset", "cache_key", CacheKeyFixtures, "error", err)
		set, source = s.fallbackFixtures, SourceFallback
	} else if fromCache {
		s.logger.DebugContext(ctx, "fixtures served from cache", "cache_key", CacheKeyFixtures)
	}
	span.SetAttributes(attribute.String("source", string(source)))

	s.mu.Lock()
	s.inFlight--
	s.fixturesSource = source
	s.markDegradedLocked(CacheKeyFixtures, err)
	changed := s.fixtures != set
	if changed {
		s.fixtures = set
	}
	var change Change
	var listeners []Listener
	if changed {
		change, listeners = s.commitLocked(ChangeFixtures, nil)
	}
	s.mu.Unlock()

	notify(change, listeners)
	return source
}

// Warmup loads bootstrap data and fixtures concurrently.
func (s *Store) Warmup(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.Store.Warmup")
	defer span.End()

	pool, err := ants.NewPool(warmupPoolSize)
	if err != nil {
		return fmt.Errorf("create warmup pool: %w", err)
	}
	defer pool.Release()

	loads := []func(context.Context) DataSource{s.FetchBootstrapData, s.FetchFixtures}
	var wg sync.WaitGroup
	for _, load := range loads {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			load(ctx)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit warmup task: %w", err)
		}
	}
	wg.Wait()

	state := s.State()
	s.logger.InfoContext(ctx, "store warmup finished",
		"status", string(state.Status),
		"bootstrap_source", string(state.BootstrapSource),
		"fixtures_source", string(state.FixturesSource),
		"current_gameweek", state.CurrentGameweek,
	)
	return nil
}

// Refresh drops the cached payloads and loads everything again.
func (s *Store) Refresh(ctx context.Context) error {
	s.cache.Delete(ctx, CacheKeyBootstrap)
	s.cache.Delete(ctx, CacheKeyFixtures)
	s.cache.Delete(ctx, liveCacheKey(s.CurrentGameweek()))
	return s.Warmup(ctx)
}

// FetchLiveStats pulls the live feed for the current gameweek and merges it.
// It reports whether any player's live stats changed.
func (s *Store) FetchLiveStats(ctx context.Context) (bool, error) {
	gw := s.CurrentGameweek()
	ctx, span := startUsecaseSpan(ctx, "usecase.Store.FetchLiveStats", attribute.Int("gameweek", gw))
	defer span.End()

	key := liveCacheKey(gw)
	value, _, err := s.cache.GetOrLoad(ctx, key, s.cfg.LiveTTL, func(ctx context.Context) (any, error) {
		return s.fetcher.LoadLiveGameweek(ctx, gw)
	})
	if err != nil {
		return false, fmt.Errorf("load live gameweek %d: %w", gw, err)
	}
	updates, ok := value.([]LivePlayerUpdate)
	if !ok {
		return false, fmt.Errorf("%w: unexpected cache value %T for %s", ErrParse, value, key)
	}
	return s.UpdateLivePlayerStats(updates), nil
}

func (s *Store) beginLoad() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *Store) markDegradedLocked(key string, err error) {
	if err == nil {
		delete(s.degradedReason, key)
		return
	}
	s.degradedReason[key] = err.Error()
}

func sourceOf(fromCache bool) DataSource {
	if fromCache {
		return SourceCache
	}
	return SourceNetwork
}

func liveCacheKey(gameweek int) string {
	return cacheKeyLive + strconv.Itoa(gameweek)
}

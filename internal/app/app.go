package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-insight/external/fpl"
	"github.com/riskibarqy/fpl-insight/internal/config"
	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-insight/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-insight/internal/platform/cache"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
	"github.com/riskibarqy/fpl-insight/internal/platform/resilience"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

// App is the wired process: one cache, one store and the HTTP server exposing it.
type App struct {
	Server *http.Server
	Store  *usecase.Store
	Cache  *cache.Store

	cfg     config.Config
	poller  *usecase.LivePoller
	janitor *cacheJanitor
	logger  *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	payloadCache := cache.NewStore(cfg.CacheBootstrapTTL)
	fetcher := newRemoteFetcher(cfg, logger)

	rules := fantasy.DefaultRules()
	if cfg.RosterBudget > 0 {
		rules.BudgetCap = cfg.RosterBudget
	}

	store := usecase.NewStore(fetcher, payloadCache, usecase.StoreConfig{
		BootstrapTTL: cfg.CacheBootstrapTTL,
		FixturesTTL:  cfg.CacheFixturesTTL,
		LiveTTL:      cfg.CacheLiveTTL,
		Rules:        rules,
		Fallback:     memory.Fallback(),
		Logger:       logger,
	})

	var poller *usecase.LivePoller
	if cfg.LivePollEnabled {
		p, err := usecase.NewLivePoller(store, cfg.LivePollInterval, logger)
		if err != nil {
			return nil, fmt.Errorf("build live poller: %w", err)
		}
		poller = p
	}

	janitor, err := newCacheJanitor(payloadCache, cfg.CachePurgeInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("build cache janitor: %w", err)
	}

	handler := httpapi.NewHandler(store, payloadCache, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		Server:  server,
		Store:   store,
		Cache:   payloadCache,
		cfg:     cfg,
		poller:  poller,
		janitor: janitor,
		logger:  logger,
	}, nil
}

// Start runs the optional warmup, then schedules cache purging and live polling.
// Upstream failures never fail Start; the store degrades to its fallback data instead.
func (a *App) Start(ctx context.Context) error {
	if a.cfg.WarmupOnStart {
		if err := a.Store.Warmup(ctx); err != nil {
			return fmt.Errorf("warmup store: %w", err)
		}
	}
	if err := a.janitor.Start(); err != nil {
		return fmt.Errorf("start cache janitor: %w", err)
	}
	if a.poller != nil {
		if err := a.poller.Start(ctx); err != nil {
			return fmt.Errorf("start live poller: %w", err)
		}
	}
	return nil
}

// Shutdown stops the background jobs and drains the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	if a.poller != nil {
		if err := a.poller.Stop(); err != nil {
			a.logger.Warn("stop live poller failed", "error", err)
		}
	}
	if err := a.janitor.Stop(); err != nil {
		a.logger.Warn("stop cache janitor failed", "error", err)
	}
	return a.Server.Shutdown(ctx)
}

func newRemoteFetcher(cfg config.Config, logger *logging.Logger) usecase.RemoteFetcher {
	if cfg.FPLOffline {
		logger.Info("fpl upstream disabled, serving seed data", "reason", "FPL_OFFLINE=true")
		return memory.NewFetcher()
	}

	return fpl.NewClient(fpl.ClientConfig{
		BaseURLs:  cfg.FPLBaseURLs,
		Timeout:   cfg.FPLTimeout,
		UserAgent: cfg.FPLUserAgent,
		Logger:    logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMax,
		},
	})
}

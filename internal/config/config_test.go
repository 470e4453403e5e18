package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev/1\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheBootstrapTTL != 5*time.Minute {
		t.Fatalf("unexpected bootstrap ttl: %s", cfg.CacheBootstrapTTL)
	}
	if cfg.CacheFixturesTTL != time.Minute {
		t.Fatalf("unexpected fixtures ttl: %s", cfg.CacheFixturesTTL)
	}
	if cfg.CacheLiveTTL != 30*time.Second {
		t.Fatalf("unexpected live ttl: %s", cfg.CacheLiveTTL)
	}
	if cfg.CachePurgeInterval != 5*time.Minute {
		t.Fatalf("unexpected cache purge interval: %s", cfg.CachePurgeInterval)
	}
	if cfg.RosterBudget != 1000 {
		t.Fatalf("unexpected roster budget: %d", cfg.RosterBudget)
	}
	if len(cfg.FPLBaseURLs) != 1 || cfg.FPLBaseURLs[0] != "https://fantasy.premierleague.com" {
		t.Fatalf("unexpected default base urls: %+v", cfg.FPLBaseURLs)
	}
	if !cfg.FPLCircuitEnabled || cfg.FPLCircuitFailureCount != 3 {
		t.Fatalf("unexpected circuit defaults: enabled=%v failures=%d", cfg.FPLCircuitEnabled, cfg.FPLCircuitFailureCount)
	}
	if cfg.LivePollEnabled || !cfg.WarmupOnStart {
		t.Fatalf("unexpected poll/warmup defaults: poll=%v warmup=%v", cfg.LivePollEnabled, cfg.WarmupOnStart)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fpl-insight-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fpl-insight-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_FPLBaseURLsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("keeps candidate order and drops duplicates", func(t *testing.T) {
		t.Setenv("FPL_BASE_URLS", " https://proxy.example.com/ , https://fantasy.premierleague.com, https://proxy.example.com")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := []string{"https://proxy.example.com", "https://fantasy.premierleague.com"}
		if len(cfg.FPLBaseURLs) != len(want) {
			t.Fatalf("unexpected base urls: %+v", cfg.FPLBaseURLs)
		}
		for i := range want {
			if cfg.FPLBaseURLs[i] != want[i] {
				t.Fatalf("unexpected base url at %d: got=%s want=%s", i, cfg.FPLBaseURLs[i], want[i])
			}
		}
	})

	t.Run("rejects unsupported scheme", func(t *testing.T) {
		t.Setenv("FPL_BASE_URLS", "ftp://fantasy.premierleague.com")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for ftp base url")
		}
	})

	t.Run("rejects missing host", func(t *testing.T) {
		t.Setenv("FPL_BASE_URLS", "https://")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for base url without host")
		}
	})
}

func TestLoad_DurationValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	for _, key := range []string{"CACHE_BOOTSTRAP_TTL", "CACHE_FIXTURES_TTL", "CACHE_LIVE_TTL", "CACHE_PURGE_INTERVAL", "FPL_TIMEOUT", "LIVE_POLL_INTERVAL"} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "0s")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for zero %s", key)
			}
			t.Setenv(key, "soon")
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for unparsable %s", key)
			}
		})
	}
}

func TestLoad_CacheAndPollParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CACHE_BOOTSTRAP_TTL", "10m")
	t.Setenv("CACHE_FIXTURES_TTL", "2m")
	t.Setenv("CACHE_LIVE_TTL", "15s")
	t.Setenv("LIVE_POLL_ENABLED", "true")
	t.Setenv("LIVE_POLL_INTERVAL", "45s")
	t.Setenv("ROSTER_BUDGET", "1050")
	t.Setenv("FPL_OFFLINE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheBootstrapTTL != 10*time.Minute || cfg.CacheFixturesTTL != 2*time.Minute || cfg.CacheLiveTTL != 15*time.Second {
		t.Fatalf("unexpected cache ttls: %s %s %s", cfg.CacheBootstrapTTL, cfg.CacheFixturesTTL, cfg.CacheLiveTTL)
	}
	if !cfg.LivePollEnabled || cfg.LivePollInterval != 45*time.Second {
		t.Fatalf("unexpected live poll config: enabled=%v interval=%s", cfg.LivePollEnabled, cfg.LivePollInterval)
	}
	if cfg.RosterBudget != 1050 || !cfg.FPLOffline {
		t.Fatalf("unexpected roster/offline config: budget=%d offline=%v", cfg.RosterBudget, cfg.FPLOffline)
	}
}

func TestLoad_CircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("failure count", func(t *testing.T) {
		t.Setenv("FPL_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for FPL_CIRCUIT_FAILURE_COUNT=0")
		}
	})
	t.Run("half open", func(t *testing.T) {
		t.Setenv("FPL_CIRCUIT_HALF_OPEN_MAX_REQ", "x")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-numeric FPL_CIRCUIT_HALF_OPEN_MAX_REQ")
		}
	})
	t.Run("roster budget", func(t *testing.T) {
		t.Setenv("ROSTER_BUDGET", "-5")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative ROSTER_BUDGET")
		}
	})
}

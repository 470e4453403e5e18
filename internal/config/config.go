package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	CORSAllowedOrigins     []string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	ShutdownTimeout        time.Duration
	LogLevel               logging.Level
	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeBasicAuthUser string
	PyroscopeBasicAuthPass string
	PyroscopeUploadRate    time.Duration
	FPLOffline             bool
	FPLBaseURLs            []string
	FPLTimeout             time.Duration
	FPLUserAgent           string
	FPLCircuitEnabled      bool
	FPLCircuitFailureCount int
	FPLCircuitOpenTimeout  time.Duration
	FPLCircuitHalfOpenMax  int
	CacheBootstrapTTL      time.Duration
	CacheFixturesTTL       time.Duration
	CacheLiveTTL           time.Duration
	CachePurgeInterval     time.Duration
	RosterBudget           int
	LivePollEnabled        bool
	LivePollInterval       time.Duration
	WarmupOnStart          bool
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsPositiveDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	fplOffline, err := strconv.ParseBool(getEnv("FPL_OFFLINE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_OFFLINE: %w", err)
	}
	fplBaseURLs, err := parseBaseURLs(getEnv("FPL_BASE_URLS", "https://fantasy.premierleague.com"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_BASE_URLS: %w", err)
	}
	fplTimeout, err := getEnvAsPositiveDuration("FPL_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	fplCircuitEnabled, err := strconv.ParseBool(getEnv("FPL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_ENABLED: %w", err)
	}
	fplCircuitFailureCount, err := getEnvAsInt("FPL_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if fplCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FPL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	fplCircuitOpenTimeout, err := getEnvAsPositiveDuration("FPL_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	fplCircuitHalfOpenMax, err := getEnvAsInt("FPL_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if fplCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("FPL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheBootstrapTTL, err := getEnvAsPositiveDuration("CACHE_BOOTSTRAP_TTL", "5m")
	if err != nil {
		return Config{}, err
	}
	cacheFixturesTTL, err := getEnvAsPositiveDuration("CACHE_FIXTURES_TTL", "1m")
	if err != nil {
		return Config{}, err
	}
	cacheLiveTTL, err := getEnvAsPositiveDuration("CACHE_LIVE_TTL", "30s")
	if err != nil {
		return Config{}, err
	}

	cachePurgeInterval, err := getEnvAsPositiveDuration("CACHE_PURGE_INTERVAL", "5m")
	if err != nil {
		return Config{}, err
	}

	rosterBudget, err := getEnvAsInt("ROSTER_BUDGET", 1000)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_BUDGET: %w", err)
	}
	if rosterBudget <= 0 {
		return Config{}, fmt.Errorf("ROSTER_BUDGET must be > 0")
	}

	livePollEnabled, err := strconv.ParseBool(getEnv("LIVE_POLL_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_POLL_ENABLED: %w", err)
	}
	livePollInterval, err := getEnvAsPositiveDuration("LIVE_POLL_INTERVAL", "1m")
	if err != nil {
		return Config{}, err
	}
	warmupOnStart, err := strconv.ParseBool(getEnv("WARMUP_ON_START", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARMUP_ON_START: %w", err)
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "fpl-insight-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		ShutdownTimeout:        shutdownTimeout,
		LogLevel:               logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPass: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		FPLOffline:             fplOffline,
		FPLBaseURLs:            fplBaseURLs,
		FPLTimeout:             fplTimeout,
		FPLUserAgent:           strings.TrimSpace(getEnv("FPL_USER_AGENT", "fpl-insight")),
		FPLCircuitEnabled:      fplCircuitEnabled,
		FPLCircuitFailureCount: fplCircuitFailureCount,
		FPLCircuitOpenTimeout:  fplCircuitOpenTimeout,
		FPLCircuitHalfOpenMax:  fplCircuitHalfOpenMax,
		CacheBootstrapTTL:      cacheBootstrapTTL,
		CacheFixturesTTL:       cacheFixturesTTL,
		CacheLiveTTL:           cacheLiveTTL,
		CachePurgeInterval:     cachePurgeInterval,
		RosterBudget:           rosterBudget,
		LivePollEnabled:        livePollEnabled,
		LivePollInterval:       livePollInterval,
		WarmupOnStart:          warmupOnStart,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseBaseURLs keeps the declared order; the first entry is tried first.
func parseBaseURLs(raw string) ([]string, error) {
	items := splitCSV(raw)
	if len(items) == 0 {
		return nil, crerr.New("at least one base url is required")
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		normalized, err := validateHTTPBaseURL(item)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out, nil
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

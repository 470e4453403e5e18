package fpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
	"github.com/riskibarqy/fpl-insight/internal/platform/resilience"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

const (
	DefaultBaseURL = "https://fantasy.premierleague.com"

	bootstrapPath   = "/api/bootstrap-static/"
	fixturesPath    = "/api/fixtures/"
	livePathPattern = "/api/event/%d/live/"

	defaultTimeout     = 15 * time.Second
	maxResponseBodyLen = 16 << 20
	errorBodyPreview   = 256
)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURLs       []string
	Timeout        time.Duration
	UserAgent      string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the fantasy API through an ordered list of candidate base
// URLs (usually a proxy first, then the origin).
type Client struct {
	httpClient     *fasthttp.Client
	baseURLs       []string
	timeout        time.Duration
	userAgent      string
	logger         *logging.Logger
	validate       *validator.Validate
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("fpl_client")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                     "fpl-insight",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxResponseBodyLen,
			NoDefaultUserAgentHeader: true,
		}
	}

	baseURLs := make([]string, 0, len(cfg.BaseURLs))
	for _, raw := range cfg.BaseURLs {
		if trimmed := strings.TrimRight(strings.TrimSpace(raw), "/"); trimmed != "" {
			baseURLs = append(baseURLs, trimmed)
		}
	}
	if len(baseURLs) == 0 {
		baseURLs = []string{DefaultBaseURL}
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = "fpl-insight"
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker("fpl", breakerCfg, func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient:     httpClient,
		baseURLs:       baseURLs,
		timeout:        timeout,
		userAgent:      userAgent,
		logger:         logger,
		validate:       validator.New(),
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) LoadBootstrap(ctx context.Context) (usecase.BootstrapData, error) {
	var payload bootstrapEnvelope
	if err := c.getJSON(ctx, bootstrapPath, &payload); err != nil {
		return usecase.BootstrapData{}, err
	}
	return mapBootstrap(payload), nil
}

func (c *Client) LoadFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	var payload fixtureList
	if err := c.getJSON(ctx, fixturesPath, &payload.Items); err != nil {
		return nil, err
	}
	return mapFixtures(payload.Items), nil
}

func (c *Client) LoadLiveGameweek(ctx context.Context, gameweek int) ([]usecase.LivePlayerUpdate, error) {
	if gameweek <= 0 {
		return nil, crerr.Mark(crerr.Newf("gameweek must be greater than zero, got %d", gameweek), usecase.ErrInvalidInput)
	}

	var payload liveEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf(livePathPattern, gameweek), &payload); err != nil {
		return nil, err
	}
	return mapLive(payload), nil
}

// getJSON tries every candidate base URL in order and decodes the first
// usable response into target. When all fail, the last attempt's error is
// returned with the full attempt trail attached.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "state", string(c.breaker.State()), "path", path)
			return crerr.Mark(crerr.Wrap(err, "fpl api is temporarily unavailable"), usecase.ErrNetwork)
		}
	}

	span := trace.SpanFromContext(ctx)
	trail := bytebufferpool.Get()
	defer bytebufferpool.Put(trail)

	var lastErr error
	for idx, baseURL := range c.baseURLs {
		if err := ctx.Err(); err != nil {
			lastErr = crerr.Mark(crerr.Wrap(err, "request cancelled"), usecase.ErrNetwork)
			break
		}

		err := c.attempt(ctx, baseURL+path, target)
		if err == nil {
			c.recordCircuitResult(nil)
			if span.IsRecording() {
				span.SetAttributes(
					attribute.String("fpl.path", path),
					attribute.String("fpl.base_url", baseURL),
					attribute.Int("fpl.attempts", idx+1),
				)
			}
			if idx > 0 {
				c.logger.InfoContext(ctx, "fpl request served by fallback candidate", "path", path, "base_url", baseURL, "attempt", idx+1)
			}
			return nil
		}

		lastErr = err
		if trail.Len() > 0 {
			_, _ = trail.WriteString("; ")
		}
		_, _ = trail.WriteString(baseURL)
		_, _ = trail.WriteString(": ")
		_, _ = trail.WriteString(err.Error())
		c.logger.DebugContext(ctx, "fpl candidate failed", "path", path, "base_url", baseURL, "error", err)
	}

	c.recordCircuitResult(lastErr)
	c.logger.WarnContext(ctx, "fpl request failed on every candidate", "path", path, "candidates", len(c.baseURLs), "attempts", trail.String())
	return crerr.Wrapf(lastErr, "fetch %s (%d candidates)", path, len(c.baseURLs))
}

func (c *Client) attempt(ctx context.Context, fullURL string, target any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return crerr.Mark(crerr.Wrap(err, "send request"), usecase.ErrNetwork)
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return crerr.Mark(crerr.Newf("upstream status=%d body=%s", status, abbreviate(resp.Body())), usecase.ErrNetwork)
	}

	if err := sonic.Unmarshal(resp.Body(), target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "decode payload"), usecase.ErrParse)
	}
	if err := c.validatePayload(ctx, target); err != nil {
		return crerr.Mark(crerr.Wrap(err, "unexpected payload shape"), usecase.ErrParse)
	}
	return nil
}

func (c *Client) validatePayload(ctx context.Context, target any) error {
	switch typed := target.(type) {
	case *[]fixtureWire:
		return c.validate.StructCtx(ctx, fixtureList{Items: *typed})
	default:
		return c.validate.StructCtx(ctx, target)
	}
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled {
		return
	}
	// a bad payload means the upstream answered; only transport failures trip the breaker.
	c.breaker.Record(err, func(err error) bool {
		return crerr.Is(err, usecase.ErrNetwork) && !crerr.Is(err, context.Canceled)
	})
}

func abbreviate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= errorBodyPreview {
		return text
	}
	return text[:errorBodyPreview] + "..."
}

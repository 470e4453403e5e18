package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-insight/internal/platform/cache"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

const (
	defaultPlayerLimit  = 50
	maxPlayerLimit      = 500
	defaultFixtureCount = 5
	maxFixtureCount     = 38
)

// CacheStatsReader exposes cache effectiveness for the status endpoint.
type CacheStatsReader interface {
	Stats() cache.Stats
}

type Handler struct {
	store      *usecase.Store
	cacheStats CacheStatsReader
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(store *usecase.Store, cacheStats CacheStatsReader, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		store:      store,
		cacheStats: cacheStats,
		logger:     logger,
		validator:  validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatus")
	defer span.End()

	state := h.store.State()
	resp := statusDTO{
		Status:          string(state.Status),
		IsLoading:       state.IsLoading,
		Degraded:        state.Degraded,
		DegradedReason:  state.DegradedReason,
		BootstrapSource: string(state.BootstrapSource),
		FixturesSource:  string(state.FixturesSource),
		CurrentGameweek: state.CurrentGameweek,
		NextGameweek:    h.store.NextGameweek(),
		Version:         state.Version,
	}
	if state.Error != nil {
		resp.Error = state.Error.Error()
	}
	if h.cacheStats != nil {
		stats := h.cacheStats.Stats()
		resp.Cache = &cacheStatsDTO{
			Hits:    stats.Hits,
			Misses:  stats.Misses,
			Entries: stats.Entries,
		}
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// parseBoundedQueryInt reads a positive integer query param, falling back to def
// when absent and capping at upper.
func parseBoundedQueryInt(r *http.Request, name string, def, upper int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive integer", usecase.ErrInvalidInput, name)
	}
	if v > upper {
		v = upper
	}
	return v, nil
}

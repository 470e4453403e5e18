package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func (h *Handler) PushLiveStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PushLiveStats")
	defer span.End()

	var req liveStatsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updates := make([]usecase.LivePlayerUpdate, 0, len(req.Updates))
	for _, item := range req.Updates {
		updates = append(updates, usecase.LivePlayerUpdate{ID: item.ID, Stats: item.Stats})
	}
	changed := h.store.UpdateLivePlayerStats(updates)

	writeSuccess(ctx, w, http.StatusOK, liveStatsResultDTO{
		Changed: changed,
		Version: h.store.Version(),
	})
}

// Refresh drops cached upstream payloads and reloads them. Upstream failures
// still answer 200 with the degraded status.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Refresh")
	defer span.End()

	if err := h.store.Refresh(ctx); err != nil {
		h.logger.ErrorContext(ctx, "refresh failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err))
		return
	}

	h.GetStatus(w, r.WithContext(ctx))
}

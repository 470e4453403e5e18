package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, rosterToDTO(ctx, h.store.Roster()))
}

func (h *Handler) AddRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRosterPlayer")
	defer span.End()

	var req addRosterPlayerRequest
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

	item, ok := h.store.Player(req.PlayerID)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: player %d", usecase.ErrNotFound, req.PlayerID))
		return
	}
	if err := h.store.TryAddPlayerToTeam(item); err != nil {
		h.logger.WarnContext(ctx, "add roster player rejected", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterToDTO(ctx, h.store.Roster()))
}

// RemoveRosterPlayer is idempotent: removing an absent player still answers 200.
func (h *Handler) RemoveRosterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRosterPlayer", routeAttrs(r)...)
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.store.RemovePlayerFromTeam(playerID)

	writeSuccess(ctx, w, http.StatusOK, rosterToDTO(ctx, h.store.Roster()))
}
